package order

import (
	"errors"
	"strings"
	"unicode/utf8"

	"orderledger/internal/pkg/errs"
	"orderledger/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Payload is the caller supplied description of an order: every attribute of
// the entity except its status.
type Payload struct {
	ID          string
	Flavor      string
	Size        string
	Crust       string
	Toppings    string
	Name        string
	Location    string
	PhoneNumber string
	Total       string
}

// Order is a single food order held in an account's store.
//
// Order follows these invariants:
//   - The id is non-empty
//   - Every field is valid UTF-8 without NUL bytes, so each driver stores it as given
//   - Every descriptive field and the declared total are fixed at creation
//   - The status starts as Placed and only Confirm changes it
type Order struct {
	// details holds the immutable facts the order was created with
	details Payload

	// status is the current lifecycle state
	status Status

	guard guard.ConstructorGuard
}

// NewOrder builds a Placed order from payload.
//
// Example:
//
//	o, err := order.NewOrder(order.Payload{ID: "1", Flavor: "margherita", Total: "2000000000000000000000"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Status()) // Placed
func NewOrder(payload Payload) (*Order, error) {
	return RestoreOrder(payload, Placed)
}

// RestoreOrder rebuilds an order from persistence with its stored status.
func RestoreOrder(payload Payload, status Status) (*Order, error) {
	if err := errors.Join(
		validateID(payload.ID),
		payload.validateText(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		details: payload,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Confirm moves the order to Confirmed. Confirming a confirmed order succeeds
// without changing anything.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// IsConfirmed reports whether the order reached the terminal state.
func (o *Order) IsConfirmed() bool {
	return o.status == Confirmed
}

// Payload returns a copy of the facts the order was created with.
func (o *Order) Payload() Payload {
	return o.details
}

func (o *Order) ID() string          { return o.details.ID }
func (o *Order) Flavor() string      { return o.details.Flavor }
func (o *Order) Size() string        { return o.details.Size }
func (o *Order) Crust() string       { return o.details.Crust }
func (o *Order) Toppings() string    { return o.details.Toppings }
func (o *Order) Name() string        { return o.details.Name }
func (o *Order) Location() string    { return o.details.Location }
func (o *Order) PhoneNumber() string { return o.details.PhoneNumber }

// Total returns the declared total exactly as it was supplied.
func (o *Order) Total() string { return o.details.Total }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// Clone returns an independent copy, used by adapters that stage writes.
func (o *Order) Clone() *Order {
	c := *o
	return &c
}

var errTextIsNotStorable = errors.New("must be valid UTF-8 without NUL bytes")

func (p Payload) validateText() error {
	fields := []struct {
		name  string
		value string
	}{
		{"id", p.ID},
		{"flavor", p.Flavor},
		{"size", p.Size},
		{"crust", p.Crust},
		{"toppings", p.Toppings},
		{"name", p.Name},
		{"location", p.Location},
		{"phone_number", p.PhoneNumber},
		{"total", p.Total},
	}

	var errList []error
	for _, f := range fields {
		if strings.ContainsRune(f.value, 0) || !utf8.ValidString(f.value) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(f.name, errTextIsNotStorable))
		}
	}
	return errors.Join(errList...)
}

func validateID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	return nil
}
