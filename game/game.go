package game

// PlayerID identifies a player by value: two IDs refer to the same
// player iff they compare equal.
type PlayerID string

// None is the zero PlayerID, used wherever no player applies.
const None PlayerID = ""

// Move is one action a player can take. Implementations must be
// comparable with ==; the searcher relies on move equality to track
// which moves of a position have already been expanded.
type Move interface {
	String() string
}

// Game is the capability contract a playable game must satisfy. The
// searcher never inspects board contents directly; all tree logic goes
// through these five methods.
type Game interface {
	// LegalMoves returns the moves the current player may play, in a
	// stable order. An empty result means the state is terminal.
	LegalMoves() []Move

	// Winner reports the winning player. ok is false while the game is
	// ongoing and for drawn terminal states; callers distinguish the
	// two by checking LegalMoves.
	Winner() (winner PlayerID, ok bool)

	// Apply plays a move, mutating the state in place. It returns an
	// *IllegalMoveError if the move is not currently legal.
	Apply(Move) error

	// CurrentPlayer returns the player whose turn it is.
	CurrentPlayer() PlayerID

	// Clone returns a deep, independent copy that shares no mutable
	// state with the original.
	Clone() Game
}
