// Package views holds the debug viewer page. The page is a hand-written
// templ component: a canvas client that mirrors engine state broadcast
// over the websocket and sends intents back.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// IndexPage renders the grid viewer.
func IndexPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, indexHTML)
		return err
	})
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>sightline</title>
<style>
  body { background: #16161d; color: #c8c8d0; font: 14px monospace; margin: 1rem; }
  #hud { margin-bottom: .5rem; }
  #hud select, #hud input { background: #26262f; color: inherit; border: 1px solid #444; }
  canvas { border: 1px solid #444; image-rendering: pixelated; }
</style>
</head>
<body>
<div id="hud">
  shape <select id="shape">
    <option value="square">square</option>
    <option value="circle">circle</option>
    <option value="circle-plus" selected>circle-plus</option>
  </select>
  radius <input id="radius" type="number" min="0" max="30" value="8" style="width:4em"/>
  <label><input id="circleDist" type="checkbox" checked/> circle dist</label>
  &mdash; move: arrows/WASD &middot; click: set path target &middot; shift-click: toggle wall
</div>
<canvas id="board"></canvas>
<script>
const TILE = 24;
const canvas = document.getElementById("board");
const ctx2d = canvas.getContext("2d");
const state = { w: 0, h: 0, walls: new Set(), visible: [], path: [], entities: {}, target: null };
const key = (x, y) => x + "," + y;

const sock = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
const send = (type, payload) => sock.send(JSON.stringify({ type, payload }));

sock.onmessage = (ev) => {
  const msg = JSON.parse(ev.data);
  const p = msg.payload;
  switch (msg.type) {
    case "snapshot":
      state.w = p.mapWidth; state.h = p.mapHeight;
      state.walls = new Set(p.walls.map(t => key(t.x, t.y)));
      state.entities = {};
      for (const e of p.entities) state.entities[e.id] = e;
      state.target = p.target;
      state.visible = p.visible || [];
      state.path = (p.path && p.path.steps) || [];
      canvas.width = state.w * TILE; canvas.height = state.h * TILE;
      document.getElementById("shape").value = p.config.shape;
      document.getElementById("radius").value = p.config.radius;
      document.getElementById("circleDist").checked = p.config.circleDist;
      break;
    case "entityUpdated":
      if (state.entities[p.id]) state.entities[p.id].tile = p.tile;
      break;
    case "visibleTilesChanged":
      state.visible = p.tiles;
      break;
    case "pathChanged":
      state.path = p.steps || [];
      break;
    case "wallToggled":
      if (p.wall) state.walls.add(key(p.x, p.y)); else state.walls.delete(key(p.x, p.y));
      break;
  }
  draw();
};

function draw() {
  ctx2d.fillStyle = "#16161d";
  ctx2d.fillRect(0, 0, canvas.width, canvas.height);
  for (const t of state.visible) {
    ctx2d.fillStyle = t.symmetric ? "#3a3a22" : "#4a2a22";
    ctx2d.fillRect(t.x * TILE, t.y * TILE, TILE, TILE);
  }
  ctx2d.fillStyle = "#707080";
  for (const wk of state.walls) {
    const [x, y] = wk.split(",").map(Number);
    ctx2d.fillRect(x * TILE, y * TILE, TILE, TILE);
  }
  if (state.path.length > 1) {
    ctx2d.strokeStyle = "#4a9cd4";
    ctx2d.lineWidth = 2;
    ctx2d.beginPath();
    ctx2d.moveTo(state.path[0].x * TILE + TILE / 2, state.path[0].y * TILE + TILE / 2);
    for (const s of state.path.slice(1)) ctx2d.lineTo(s.x * TILE + TILE / 2, s.y * TILE + TILE / 2);
    ctx2d.stroke();
  }
  if (state.target) {
    ctx2d.strokeStyle = "#d44a4a";
    ctx2d.strokeRect(state.target.x * TILE + 2, state.target.y * TILE + 2, TILE - 4, TILE - 4);
  }
  for (const id in state.entities) {
    const e = state.entities[id];
    ctx2d.fillStyle = e.kind === "seeker" ? "#e8d44a" : "#a44ad4";
    ctx2d.beginPath();
    ctx2d.arc(e.tile.x * TILE + TILE / 2, e.tile.y * TILE + TILE / 2, TILE / 3, 0, Math.PI * 2);
    ctx2d.fill();
  }
}

canvas.addEventListener("click", (ev) => {
  const r = canvas.getBoundingClientRect();
  const x = Math.floor((ev.clientX - r.left) / TILE);
  const y = Math.floor((ev.clientY - r.top) / TILE);
  if (ev.shiftKey) send("requestToggleWall", { x, y });
  else send("requestSetTarget", { x, y });
});

document.addEventListener("keydown", (ev) => {
  const dirs = {
    ArrowUp: [0, -1], ArrowDown: [0, 1], ArrowLeft: [-1, 0], ArrowRight: [1, 0],
    w: [0, -1], s: [0, 1], a: [-1, 0], d: [1, 0],
  };
  const d = dirs[ev.key];
  if (d) send("requestMove", { entityId: "seeker-1", dx: d[0], dy: d[1] });
});

for (const id of ["shape", "radius", "circleDist"]) {
  document.getElementById(id).addEventListener("change", () => {
    send("requestConfigure", {
      shape: document.getElementById("shape").value,
      radius: Number(document.getElementById("radius").value),
      circleDist: document.getElementById("circleDist").checked,
    });
  });
}
</script>
</body>
</html>
`
