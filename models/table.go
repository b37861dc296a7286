package models

type TableStatus string

const (
	TableStatusAvailable     TableStatus = "AVAILABLE"
	TableStatusOccupied      TableStatus = "OCCUPIED"
	TableStatusReserved      TableStatus = "RESERVED"
	TableStatusNeedsCleaning TableStatus = "NEEDS_CLEANING"
	TableStatusMaintenance   TableStatus = "MAINTENANCE"
)

type Table struct {
	ID          uint        `json:"id"`
	UUID        string      `json:"uuid,omitempty"`
	TableNumber string      `json:"tableNumber"`
	Capacity    int         `json:"capacity"`
	QRCode      string      `json:"qrCode,omitempty"`
	Status      TableStatus `json:"status"`
}
