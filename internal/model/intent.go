package model

// IntentTag identifies one category of guest request
type IntentTag string

const (
	IntentRoomServiceOrder    IntentTag = "RoomServiceOrder"
	IntentAmenitiesRequest    IntentTag = "AmenitiesRequest"
	IntentInquiry             IntentTag = "Inquiry"
	IntentFeedbackOrComplaint IntentTag = "FeedbackOrComplaint"
	IntentReservationRequest  IntentTag = "ReservationRequest"
	IntentCheckInOutRequest   IntentTag = "CheckInOutRequest"
	IntentParkingInquiry      IntentTag = "ParkingInquiry"
	IntentGeneralInquiry      IntentTag = "GeneralInquiry"
	IntentYesNo               IntentTag = "YesNo"
	IntentGreeting            IntentTag = "Greeting"
	IntentCancellation        IntentTag = "Cancellation"
	IntentSpecialRequest      IntentTag = "SpecialRequest"
	IntentMaintenance         IntentTag = "Maintenance"
	IntentHousekeeping        IntentTag = "Housekeeping"
	IntentPaymentInvoice      IntentTag = "PaymentInvoice"
	IntentStaffAssistance     IntentTag = "StaffAssistance"
	IntentLostAndFound        IntentTag = "LostAndFound"
	IntentLocalInformation    IntentTag = "LocalInformation"
	IntentEventRoom           IntentTag = "EventRoom"
	IntentUnknown             IntentTag = "Unknown"
)

var intentLabels = map[IntentTag]string{
	IntentRoomServiceOrder:    "Room Service Order",
	IntentAmenitiesRequest:    "Amenities Request",
	IntentInquiry:             "Inquiry",
	IntentFeedbackOrComplaint: "Feedback or Complaint",
	IntentReservationRequest:  "Reservation Request",
	IntentCheckInOutRequest:   "Check-In/Check-Out Request",
	IntentParkingInquiry:      "Parking Inquiry",
	IntentGeneralInquiry:      "General Inquiry",
	IntentYesNo:               "Yes/No",
	IntentGreeting:            "Greeting",
	IntentCancellation:        "Cancellation Request",
	IntentSpecialRequest:      "Special Request",
	IntentMaintenance:         "Maintenance",
	IntentHousekeeping:        "Housekeeping",
	IntentPaymentInvoice:      "Payment/Invoice",
	IntentStaffAssistance:     "Staff Assistance",
	IntentLostAndFound:        "Lost and Found",
	IntentLocalInformation:    "Local Information",
	IntentEventRoom:           "Event Room",
	IntentUnknown:             "Unknown Intent",
}

// Label returns the human readable name used in replies and logs
func (t IntentTag) Label() string {
	if label, ok := intentLabels[t]; ok {
		return label
	}
	return string(t)
}

// IsOrder reports whether the intent records a new order in the user context
func (t IntentTag) IsOrder() bool {
	return t == IntentRoomServiceOrder
}

// IsNegatable reports whether a negation cue turns the intent into a refusal
func (t IntentTag) IsNegatable() bool {
	switch t {
	case IntentRoomServiceOrder, IntentAmenitiesRequest, IntentReservationRequest:
		return true
	}
	return false
}

// ResultSource tells which layer of the engine produced a classification
type ResultSource string

const (
	SourceFAQ   ResultSource = "faq"
	SourceRules ResultSource = "rules"
	SourceNone  ResultSource = "none"
)

// ClassificationResult is the outcome of resolving one utterance
type ClassificationResult struct {
	Intent   IntentTag    `json:"intent"`
	Label    string       `json:"label"`
	Response string       `json:"response"`
	Source   ResultSource `json:"source"`
	Score    float64      `json:"score"`   // FAQ similarity 0-100, 0 for keyword rules
	Negated  bool         `json:"negated"` // declined form of an actionable intent
}

// FAQEntry is one preprocessed question with its canonical answer
type FAQEntry struct {
	Key      string `json:"key" db:"-"` // processed question text
	Question string `json:"question" db:"question"`
	Answer   string `json:"answer" db:"answer"`
}
