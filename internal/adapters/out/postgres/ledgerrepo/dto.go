// Package ledgerrepo persists the global order ledger: one row per account
// store, one row per order, and the single settings row holding the operator.
package ledgerrepo

import (
	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/ledger"
	"orderledger/internal/core/domain/model/order"
)

// settingsRowID is the primary key of the only ledger_settings row.
const settingsRowID = 1

// AccountStoreDTO is the row of an account's store. Its orders live in the
// orders table under the same account id.
type AccountStoreDTO struct {
	Owner     string     `gorm:"primaryKey;size:64"`
	Namespace string     `gorm:"size:64;not null;uniqueIndex"`
	Orders    []OrderDTO `gorm:"foreignKey:AccountID;references:Owner"`
}

// TableName overrides GORM's default naming convention.
func (AccountStoreDTO) TableName() string {
	return "account_stores"
}

// OrderDTO is an order row, keyed by the owning account and the order id.
type OrderDTO struct {
	AccountID   string `gorm:"primaryKey;size:64"`
	ID          string `gorm:"primaryKey"`
	Flavor      string
	Size        string
	Crust       string
	Toppings    string
	Name        string
	Location    string
	PhoneNumber string
	Total       string
	Confirmed   bool `gorm:"not null;default:false"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// SettingsDTO is the single row of ledger settings.
type SettingsDTO struct {
	ID       int    `gorm:"primaryKey"`
	Operator string `gorm:"size:64;not null"`
}

// TableName overrides GORM's default naming convention.
func (SettingsDTO) TableName() string {
	return "ledger_settings"
}

func fromDomain(store *ledger.AccountStore) AccountStoreDTO {
	owner := store.Owner().String()

	orders := make([]OrderDTO, 0, store.Len())
	for _, o := range store.Values() {
		p := o.Payload()
		orders = append(orders, OrderDTO{
			AccountID:   owner,
			ID:          p.ID,
			Flavor:      p.Flavor,
			Size:        p.Size,
			Crust:       p.Crust,
			Toppings:    p.Toppings,
			Name:        p.Name,
			Location:    p.Location,
			PhoneNumber: p.PhoneNumber,
			Total:       p.Total,
			Confirmed:   o.IsConfirmed(),
		})
	}

	return AccountStoreDTO{
		Owner:     owner,
		Namespace: store.Namespace().String(),
		Orders:    orders,
	}
}

func toDomain(dto AccountStoreDTO) (*ledger.AccountStore, error) {
	owner, err := kernel.NewAccountID(dto.Owner)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dto.Orders))
	for _, row := range dto.Orders {
		o, orderErr := order.RestoreOrder(order.Payload{
			ID:          row.ID,
			Flavor:      row.Flavor,
			Size:        row.Size,
			Crust:       row.Crust,
			Toppings:    row.Toppings,
			Name:        row.Name,
			Location:    row.Location,
			PhoneNumber: row.PhoneNumber,
			Total:       row.Total,
		}, order.StatusFromBool(row.Confirmed))
		if orderErr != nil {
			return nil, orderErr
		}
		orders = append(orders, o)
	}

	return ledger.RestoreAccountStore(owner, ledger.Namespace(dto.Namespace), orders)
}
