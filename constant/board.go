package constant

// Board geometry
const (
	// BoardWidth is the number of playable columns, x runs 1..BoardWidth
	BoardWidth = 40

	// BoardHeight is the number of playable rows, y runs 1..BoardHeight
	BoardHeight = 16

	// ShareGridLength is the number of grid characters in a share string (16 rows of 40 plus newline)
	ShareGridLength = BoardHeight * (BoardWidth + 1)

	// TriggerRadius is the half-size of the square scanned around a mover for cascades
	TriggerRadius = 2
)

// Move budget
const (
	// UnlimitedMoves is the budget sentinel for levels whose trailer asks for no limit
	UnlimitedMoves = 99999

	// BonusMoves is added to a limited budget when the player eats an AddMoves cell
	BonusMoves = 250
)
