package event

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
)

const (
	TopicProductCreated = "catalog.product.created"
	TopicProductUpdated = "catalog.product.updated"
	TopicProductDeleted = "catalog.product.deleted"
)

// Topics lists every topic the catalog publishes to.
var Topics = []string{
	TopicProductCreated,
	TopicProductUpdated,
	TopicProductDeleted,
}

// ProductChangedEvent is published on create and update with the resulting state.
type ProductChangedEvent struct {
	ProductID   int64           `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

type ProductDeletedEvent struct {
	ProductID  int64     `json:"product_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewProductChangedEvent(p model.Product) ProductChangedEvent {
	return ProductChangedEvent{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		OccurredAt:  p.UpdatedAt,
	}
}

// PartitionKey keeps every event of one product on the same partition.
func PartitionKey(productID int64) string {
	return strconv.FormatInt(productID, 10)
}
