package constant

type MovementType string

const (
	MovementReserve     MovementType = "RESERVE"
	MovementRelease     MovementType = "RELEASE"
	MovementFulfill     MovementType = "FULFILL"
	MovementRestock     MovementType = "RESTOCK"
	MovementTransferOut MovementType = "TRANSFER_OUT"
	MovementTransferIn  MovementType = "TRANSFER_IN"
)
