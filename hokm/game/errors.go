package game

// Error is returned by every rejected engine operation. A rejected operation
// leaves the game untouched.
type Error struct {
	Code int
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

func newErr(code int, msg string) Error {
	return Error{Code: code, Msg: msg}
}

var (
	ErrInvalidPhase   = newErr(1, "Invalid phase. ")
	ErrNotYourTurn    = newErr(2, "Not your turn. ")
	ErrCardNotInHand  = newErr(3, "Card not in hand. ")
	ErrMustFollowSuit = newErr(4, "Must follow the lead suit. ")
	ErrNotHakim       = newErr(5, "Only the hakim can declare trump. ")
	ErrInvalidSuit    = newErr(6, "Invalid suit. ")
	ErrInvalidSeat    = newErr(7, "Invalid seat. ")
	ErrInvalidDeck    = newErr(8, "Deck must hold all 52 cards exactly once. ")
	ErrMatchFinished  = newErr(9, "Match finished. ")
)
