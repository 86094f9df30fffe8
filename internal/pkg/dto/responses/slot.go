package responses

type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Room      string `json:"room,omitempty"`
}

type AvailableSlots struct {
	Date           string      `json:"date"`
	Doctor         SlotDoctor  `json:"doctor"`
	Department     *Department `json:"department,omitempty"`
	AvailableSlots []Slot      `json:"available_slots"`
}

type SlotDoctor struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Specialization string `json:"specialization"`
}
