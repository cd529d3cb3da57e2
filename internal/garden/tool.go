package garden

// Tool is the player's selected interaction mode.
type Tool int

const (
	WateringCan Tool = iota
	Shovel
)

// Tools lists the hotbar in slot order.
var Tools = []Tool{WateringCan, Shovel}

// String returns the hotbar label.
func (t Tool) String() string {
	switch t {
	case WateringCan:
		return "Watering can"
	case Shovel:
		return "Shovel"
	default:
		return "Unknown"
	}
}

// Next returns the tool in the following hotbar slot, wrapping around.
func (t Tool) Next() Tool {
	return Tools[(int(t)+1)%len(Tools)]
}
