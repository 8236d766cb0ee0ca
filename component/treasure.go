package component

// TreasureComponent is a collectible chest, Collected only ever flips false to true
type TreasureComponent struct {
	X, Y      float64
	Collected bool
}
