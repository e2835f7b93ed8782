package protocol

type EntityLite struct {
	ID   string  `json:"id"`
	Kind string  `json:"kind"`
	Tile TilePos `json:"tile"`
}

type Snapshot struct {
	MapWidth        int           `json:"mapWidth"`
	MapHeight       int           `json:"mapHeight"`
	Walls           []TilePos     `json:"walls"`
	Entities        []EntityLite  `json:"entities"`
	Target          TilePos       `json:"target"`
	Visible         []VisibleTile `json:"visible"`
	Path            *PathChanged  `json:"path,omitempty"`
	Config          ConfigChanged `json:"config"`
	ProtocolVersion string        `json:"protocolVersion"`
}
