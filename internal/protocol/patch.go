package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type TilePos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type VisibleTile struct {
	X         int  `json:"x"`
	Y         int  `json:"y"`
	Symmetric bool `json:"symmetric"`
}

type EntityUpdated struct {
	ID   string  `json:"id"`
	Tile TilePos `json:"tile"`
}

type VisibleTilesChanged struct {
	EntityID string        `json:"entityId"`
	Tiles    []VisibleTile `json:"tiles"`
}

type PathChanged struct {
	EntityID string    `json:"entityId"`
	Kind     string    `json:"kind"`
	Steps    []TilePos `json:"steps"`
}

type WallToggled struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Wall bool `json:"wall"`
}

type ConfigChanged struct {
	Shape           string `json:"shape"`
	Radius          int    `json:"radius"`
	CircleDist      bool   `json:"circleDist"`
	BoundPad        int    `json:"boundPad"`
	ExploreLimit    int    `json:"exploreLimit"`
	FallbackClosest bool   `json:"fallbackClosest"`
}
