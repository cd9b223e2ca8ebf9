package component

// RenderableComponent marks an entity handed to the display every frame
type RenderableComponent struct {
	Name  string // Scene asset name
	Glyph rune   // Terminal representation
}

// GoalComponent marks the maze exit
type GoalComponent struct {
	Radius  float32
	Reached bool
}
