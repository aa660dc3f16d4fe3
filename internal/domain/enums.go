package domain

// Space identifies which part of the venue a booking requests.
type Space string

const (
	SpaceMainHall    Space = "Main Hall"
	SpaceMeetingRoom Space = "Meeting Room"
	SpaceBothSpaces  Space = "Both Spaces"
)

// TimeSelection is the time-of-day category chosen on the booking form.
type TimeSelection string

const (
	TimeFullDay   TimeSelection = "Full Day"
	TimeMorning   TimeSelection = "Morning"
	TimeAfternoon TimeSelection = "Afternoon"
	TimeEvening   TimeSelection = "Evening"
	TimeCustom    TimeSelection = "Custom"
)

// BookingStatus is the approval lifecycle of a booking record.
type BookingStatus string

const (
	BookingPendingPayment BookingStatus = "pending_payment"
	BookingApproved       BookingStatus = "approved"
)

// InvoiceStatus is the lifecycle of an invoice record.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
)

// Privacy controls whether the event is listed publicly once approved.
type Privacy string

const (
	PrivacyPrivate Privacy = "private"
	PrivacyPublic  Privacy = "public"
)

// UserRole defines caller roles. The only privileged role is admin.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// RecordStatusPublished is the content-system status that triggers the
// approval transition on a saved booking record.
const RecordStatusPublished = "published"
