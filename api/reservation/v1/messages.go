package reservationv1

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type Empty struct{}

func (*Empty) appendWire(b []byte) []byte { return b }

func (*Empty) consumeWire(b []byte) error {
	return decode(b, func(protowire.Number, protowire.Type, []byte) int { return 0 })
}

type LoginRequest struct {
	Username string `validate:"required,max=64"`
	Password string `validate:"required"`
}

func (m *LoginRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Username)
	return appendString(b, 2, m.Password)
}

func (m *LoginRequest) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Username)
		case 2:
			return consumeString(typ, b, &m.Password)
		}
		return 0
	})
}

type LoginResponse struct {
	Token     string
	AccountId int64
	Role      string
	FullName  string
	ExpiresAt *timestamppb.Timestamp
}

func (m *LoginResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Token)
	b = appendInt64(b, 2, m.AccountId)
	b = appendString(b, 3, m.Role)
	b = appendString(b, 4, m.FullName)
	return appendTimestamp(b, 5, m.ExpiresAt)
}

func (m *LoginResponse) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Token)
		case 2:
			return consumeInt64(typ, b, &m.AccountId)
		case 3:
			return consumeString(typ, b, &m.Role)
		case 4:
			return consumeString(typ, b, &m.FullName)
		case 5:
			return consumeTimestamp(typ, b, &m.ExpiresAt)
		}
		return 0
	})
}

// Slot identifies [StartTime, EndTime) on a court. Date is YYYY-MM-DD.
type Slot struct {
	CourtId   int64                  `validate:"gt=0"`
	Date      string                 `validate:"required,datetime=2006-01-02"`
	StartTime *timestamppb.Timestamp `validate:"required"`
	EndTime   *timestamppb.Timestamp `validate:"required"`
}

func (m *Slot) appendSlot(b []byte) []byte {
	b = appendInt64(b, 1, m.CourtId)
	b = appendString(b, 2, m.Date)
	b = appendTimestamp(b, 3, m.StartTime)
	return appendTimestamp(b, 4, m.EndTime)
}

func (m *Slot) consumeSlot(num protowire.Number, typ protowire.Type, b []byte) int {
	switch num {
	case 1:
		return consumeInt64(typ, b, &m.CourtId)
	case 2:
		return consumeString(typ, b, &m.Date)
	case 3:
		return consumeTimestamp(typ, b, &m.StartTime)
	case 4:
		return consumeTimestamp(typ, b, &m.EndTime)
	}
	return 0
}

type CheckAvailabilityRequest struct {
	Slot
}

func (m *CheckAvailabilityRequest) appendWire(b []byte) []byte { return m.appendSlot(b) }

func (m *CheckAvailabilityRequest) consumeWire(b []byte) error { return decode(b, m.consumeSlot) }

type CheckAvailabilityResponse struct {
	Available bool
}

func (m *CheckAvailabilityResponse) appendWire(b []byte) []byte { return appendBool(b, 1, m.Available) }

func (m *CheckAvailabilityResponse) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeBool(typ, b, &m.Available)
		}
		return 0
	})
}

type CreateReservationRequest struct {
	Slot
	Remark string `validate:"required"`
}

func (m *CreateReservationRequest) appendWire(b []byte) []byte {
	b = m.appendSlot(b)
	return appendString(b, 5, m.Remark)
}

func (m *CreateReservationRequest) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 5 {
			return consumeString(typ, b, &m.Remark)
		}
		return m.consumeSlot(num, typ, b)
	})
}

type Reservation struct {
	Id           int64
	AccountId    int64
	CourtId      int64
	Date         string
	StartTime    *timestamppb.Timestamp
	EndTime      *timestamppb.Timestamp
	Status       string
	Remark       string
	CreatedAt    *timestamppb.Timestamp
	UpdatedAt    *timestamppb.Timestamp
	Username     string
	UserFullName string
	CourtName    string
	CourtType    string
	Department   string
}

func (m *Reservation) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.Id)
	b = appendInt64(b, 2, m.AccountId)
	b = appendInt64(b, 3, m.CourtId)
	b = appendString(b, 4, m.Date)
	b = appendTimestamp(b, 5, m.StartTime)
	b = appendTimestamp(b, 6, m.EndTime)
	b = appendString(b, 7, m.Status)
	b = appendString(b, 8, m.Remark)
	b = appendTimestamp(b, 9, m.CreatedAt)
	b = appendTimestamp(b, 10, m.UpdatedAt)
	b = appendString(b, 11, m.Username)
	b = appendString(b, 12, m.UserFullName)
	b = appendString(b, 13, m.CourtName)
	b = appendString(b, 14, m.CourtType)
	return appendString(b, 15, m.Department)
}

func (m *Reservation) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeInt64(typ, b, &m.Id)
		case 2:
			return consumeInt64(typ, b, &m.AccountId)
		case 3:
			return consumeInt64(typ, b, &m.CourtId)
		case 4:
			return consumeString(typ, b, &m.Date)
		case 5:
			return consumeTimestamp(typ, b, &m.StartTime)
		case 6:
			return consumeTimestamp(typ, b, &m.EndTime)
		case 7:
			return consumeString(typ, b, &m.Status)
		case 8:
			return consumeString(typ, b, &m.Remark)
		case 9:
			return consumeTimestamp(typ, b, &m.CreatedAt)
		case 10:
			return consumeTimestamp(typ, b, &m.UpdatedAt)
		case 11:
			return consumeString(typ, b, &m.Username)
		case 12:
			return consumeString(typ, b, &m.UserFullName)
		case 13:
			return consumeString(typ, b, &m.CourtName)
		case 14:
			return consumeString(typ, b, &m.CourtType)
		case 15:
			return consumeString(typ, b, &m.Department)
		}
		return 0
	})
}

type ReservationReply struct {
	Reservation *Reservation
}

func (m *ReservationReply) appendWire(b []byte) []byte {
	if m.Reservation == nil {
		return b
	}
	return appendMessage(b, 1, m.Reservation)
}

func (m *ReservationReply) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			m.Reservation = &Reservation{}
			return consumeMessage(typ, b, m.Reservation)
		}
		return 0
	})
}

// ReservationRef addresses one reservation by id.
type ReservationRef struct {
	Id int64 `validate:"gt=0"`
}

func (m *ReservationRef) appendWire(b []byte) []byte { return appendInt64(b, 1, m.Id) }

func (m *ReservationRef) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeInt64(typ, b, &m.Id)
		}
		return 0
	})
}

type ChangeStatusRequest struct {
	Id     int64  `validate:"gt=0"`
	Status string `validate:"required"`
}

func (m *ChangeStatusRequest) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.Id)
	return appendString(b, 2, m.Status)
}

func (m *ChangeStatusRequest) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeInt64(typ, b, &m.Id)
		case 2:
			return consumeString(typ, b, &m.Status)
		}
		return 0
	})
}

// ChangeReply reports whether a status change took effect.
type ChangeReply struct {
	Changed bool
}

func (m *ChangeReply) appendWire(b []byte) []byte { return appendBool(b, 1, m.Changed) }

func (m *ChangeReply) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeBool(typ, b, &m.Changed)
		}
		return 0
	})
}

// ListReservationsRequest scopes: "all", "account" or "date". An empty
// scope means the caller's own reservations.
type ListReservationsRequest struct {
	Scope     string `validate:"omitempty,oneof=all account date"`
	AccountId int64  `validate:"gte=0"`
	Date      string `validate:"omitempty,datetime=2006-01-02"`
	Status    string
}

func (m *ListReservationsRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Scope)
	b = appendInt64(b, 2, m.AccountId)
	b = appendString(b, 3, m.Date)
	return appendString(b, 4, m.Status)
}

func (m *ListReservationsRequest) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Scope)
		case 2:
			return consumeInt64(typ, b, &m.AccountId)
		case 3:
			return consumeString(typ, b, &m.Date)
		case 4:
			return consumeString(typ, b, &m.Status)
		}
		return 0
	})
}

type ListReservationsResponse struct {
	Reservations []*Reservation
}

func (m *ListReservationsResponse) appendWire(b []byte) []byte {
	for _, r := range m.Reservations {
		b = appendMessage(b, 1, r)
	}
	return b
}

func (m *ListReservationsResponse) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			r := &Reservation{}
			n := consumeMessage(typ, b, r)
			if n > 0 {
				m.Reservations = append(m.Reservations, r)
			}
			return n
		}
		return 0
	})
}

// CourtType doubles as the CreateCourtType request.
type CourtType struct {
	Id          int64
	Description string `validate:"required,max=50"`
}

func (m *CourtType) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.Id)
	return appendString(b, 2, m.Description)
}

func (m *CourtType) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeInt64(typ, b, &m.Id)
		case 2:
			return consumeString(typ, b, &m.Description)
		}
		return 0
	})
}

type ListCourtTypesResponse struct {
	CourtTypes []*CourtType
}

func (m *ListCourtTypesResponse) appendWire(b []byte) []byte {
	for _, ct := range m.CourtTypes {
		b = appendMessage(b, 1, ct)
	}
	return b
}

func (m *ListCourtTypesResponse) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			ct := &CourtType{}
			n := consumeMessage(typ, b, ct)
			if n > 0 {
				m.CourtTypes = append(m.CourtTypes, ct)
			}
			return n
		}
		return 0
	})
}

// Court doubles as the CreateCourt and UpdateCourt request; Id is ignored
// on create.
type Court struct {
	Id          int64  `validate:"gte=0"`
	CourtTypeId int64  `validate:"gt=0"`
	Description string `validate:"required,max=100"`
}

func (m *Court) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.Id)
	b = appendInt64(b, 2, m.CourtTypeId)
	return appendString(b, 3, m.Description)
}

func (m *Court) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeInt64(typ, b, &m.Id)
		case 2:
			return consumeInt64(typ, b, &m.CourtTypeId)
		case 3:
			return consumeString(typ, b, &m.Description)
		}
		return 0
	})
}

type ListCourtsRequest struct {
	CourtTypeId int64 `validate:"gte=0"`
}

func (m *ListCourtsRequest) appendWire(b []byte) []byte { return appendInt64(b, 1, m.CourtTypeId) }

func (m *ListCourtsRequest) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeInt64(typ, b, &m.CourtTypeId)
		}
		return 0
	})
}

type ListCourtsResponse struct {
	Courts []*Court
}

func (m *ListCourtsResponse) appendWire(b []byte) []byte {
	for _, c := range m.Courts {
		b = appendMessage(b, 1, c)
	}
	return b
}

func (m *ListCourtsResponse) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			c := &Court{}
			n := consumeMessage(typ, b, c)
			if n > 0 {
				m.Courts = append(m.Courts, c)
			}
			return n
		}
		return 0
	})
}

type DeleteCourtRequest struct {
	Id int64 `validate:"gt=0"`
}

func (m *DeleteCourtRequest) appendWire(b []byte) []byte { return appendInt64(b, 1, m.Id) }

func (m *DeleteCourtRequest) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeInt64(typ, b, &m.Id)
		}
		return 0
	})
}

type Account struct {
	Id           int64
	Username     string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Role         string
	Status       string
	DepartmentId int64
}

func (m *Account) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.Id)
	b = appendString(b, 2, m.Username)
	b = appendString(b, 3, m.FirstName)
	b = appendString(b, 4, m.LastName)
	b = appendString(b, 5, m.Email)
	b = appendString(b, 6, m.Phone)
	b = appendString(b, 7, m.Role)
	b = appendString(b, 8, m.Status)
	return appendInt64(b, 9, m.DepartmentId)
}

func (m *Account) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeInt64(typ, b, &m.Id)
		case 2:
			return consumeString(typ, b, &m.Username)
		case 3:
			return consumeString(typ, b, &m.FirstName)
		case 4:
			return consumeString(typ, b, &m.LastName)
		case 5:
			return consumeString(typ, b, &m.Email)
		case 6:
			return consumeString(typ, b, &m.Phone)
		case 7:
			return consumeString(typ, b, &m.Role)
		case 8:
			return consumeString(typ, b, &m.Status)
		case 9:
			return consumeInt64(typ, b, &m.DepartmentId)
		}
		return 0
	})
}

type ListAccountsResponse struct {
	Accounts []*Account
}

func (m *ListAccountsResponse) appendWire(b []byte) []byte {
	for _, a := range m.Accounts {
		b = appendMessage(b, 1, a)
	}
	return b
}

func (m *ListAccountsResponse) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			a := &Account{}
			n := consumeMessage(typ, b, a)
			if n > 0 {
				m.Accounts = append(m.Accounts, a)
			}
			return n
		}
		return 0
	})
}

type SetAccountStatusRequest struct {
	AccountId int64  `validate:"gt=0"`
	Status    string `validate:"required"`
}

func (m *SetAccountStatusRequest) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.AccountId)
	return appendString(b, 2, m.Status)
}

func (m *SetAccountStatusRequest) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeInt64(typ, b, &m.AccountId)
		case 2:
			return consumeString(typ, b, &m.Status)
		}
		return 0
	})
}

type Department struct {
	Id   int64
	Name string `validate:"required,max=100"`
}

func (m *Department) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, m.Id)
	return appendString(b, 2, m.Name)
}

func (m *Department) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeInt64(typ, b, &m.Id)
		case 2:
			return consumeString(typ, b, &m.Name)
		}
		return 0
	})
}

type CreateAccountRequest struct {
	Username     string `validate:"required,max=64"`
	Password     string `validate:"required,min=8,max=72"`
	FirstName    string `validate:"required,max=50"`
	LastName     string `validate:"max=50"`
	Email        string `validate:"omitempty,email,max=100"`
	Phone        string `validate:"max=20"`
	Role         string `validate:"required,oneof=admin user"`
	DepartmentId int64  `validate:"gte=0"`
}

func (m *CreateAccountRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Username)
	b = appendString(b, 2, m.Password)
	b = appendString(b, 3, m.FirstName)
	b = appendString(b, 4, m.LastName)
	b = appendString(b, 5, m.Email)
	b = appendString(b, 6, m.Phone)
	b = appendString(b, 7, m.Role)
	return appendInt64(b, 8, m.DepartmentId)
}

func (m *CreateAccountRequest) consumeWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Username)
		case 2:
			return consumeString(typ, b, &m.Password)
		case 3:
			return consumeString(typ, b, &m.FirstName)
		case 4:
			return consumeString(typ, b, &m.LastName)
		case 5:
			return consumeString(typ, b, &m.Email)
		case 6:
			return consumeString(typ, b, &m.Phone)
		case 7:
			return consumeString(typ, b, &m.Role)
		case 8:
			return consumeInt64(typ, b, &m.DepartmentId)
		}
		return 0
	})
}
