// Package domain holds the persistent entities and the error taxonomy
// shared by every service in the POS backend.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee is a store worker who submits orders.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	IsManager bool      `gorm:"not null;default:false" json:"is_manager"`

	Orders []Order `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
}

// Customer holds the loyalty-point balance referenced by the order workflow.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Birthday  time.Time `gorm:"type:date" json:"birthday"`
	Points    int64     `gorm:"not null;default:0" json:"points"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Orders  []Order  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews []Review `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

// Ingredient is a stock-tracked raw material. Quantity is the ledger's
// quantity-on-hand and must never go negative.
type Ingredient struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	Supplier   string    `gorm:"type:text;not null" json:"supplier"`
	Expiration time.Time `gorm:"type:date;not null" json:"expiration"`

	ProductIngredients []ProductIngredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
}

// Product is a menu item.
type Product struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string          `gorm:"type:text;not null" json:"name"`
	Description    string          `gorm:"type:text;not null" json:"description"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Customizations *string         `gorm:"type:text" json:"customizations"`
	HasCaffeine    bool            `gorm:"not null;default:false" json:"has_caffeine"`
	IsSeasonal     bool            `gorm:"not null;default:false" json:"is_seasonal"`
	ImageURL       *string         `gorm:"type:text" json:"image_url"`
	AlertText      *string         `gorm:"type:text" json:"alert_text"`

	ProductIngredients []ProductIngredient `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product_ingredients,omitempty"`
}

// ProductIngredient associates a product with one ingredient of its recipe.
// Quantity is the per-unit requirement and is non-negative.
type ProductIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	Quantity     int64     `gorm:"not null" json:"quantity"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// Order is the persisted order header. Completed transitions false to true
// exactly once; there is no transition back.
type Order struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index" json:"employee_id"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	Total      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	OrderDate  time.Time       `gorm:"not null" json:"order_date"`
	Completed  bool            `gorm:"not null;default:false" json:"completed"`

	LineItems []OrderLineItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"line_items,omitempty"`
}

// OrderLineItem is one product row on an order. Quantity is at least 1;
// every submitted product id becomes its own quantity-1 row.
type OrderLineItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// Review is free-text customer feedback on a product. Independent of the
// order workflow.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	ReviewText string    `gorm:"type:text;not null" json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}
