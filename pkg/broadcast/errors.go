package broadcast

// ErrCellClosed is returned when publishing to a closed cell
type ErrCellClosed struct{}

func (e ErrCellClosed) Error() string {
	return "broadcast: cell is closed"
}
