package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CatalogRepo *repository.CatalogRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, catalogRepo *repository.CatalogRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CatalogRepo: catalogRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	ExtraIDs  []uint `json:"extraIds"`
}

type CreateOrderReq struct {
	CustomerName    string        `json:"customerName" binding:"required"`
	CustomerEmail   string        `json:"customerEmail" binding:"omitempty,email"`
	CustomerPhone   string        `json:"customerPhone"`
	DeliveryAddress string        `json:"deliveryAddress" binding:"required"`
	DeliveryCity    string        `json:"deliveryCity"`
	DeliveryNotes   string        `json:"deliveryNotes"`
	Items           []OrderItemIn `json:"items" binding:"required,min=1,dive"`
}

// ----- Create -----

// Create materializes an order from cart input. Product and extra prices
// are snapshotted at this moment; header, items and extras commit or roll
// back together. userID 0 means anonymous checkout.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	type extraRow struct {
		ingredientID uint
		name         string
		unitPrice    decimal.Decimal
	}
	type itemRow struct {
		productID   uint
		name        string
		description string
		qty         int
		unitPrice   decimal.Decimal
		extras      []extraRow
	}

	rows := make([]itemRow, 0, len(req.Items))
	for i, it := range req.Items {
		p, err := s.CatalogRepo.GetProduct(it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("items[%d]: %w", i, ErrNotFound)
			}
			return nil, err
		}
		if !p.IsActive {
			return nil, fmt.Errorf("items[%d]: %w", i, ErrNotFound)
		}

		row := itemRow{
			productID:   p.ID,
			name:        p.Name,
			description: p.Description,
			qty:         it.Quantity,
			unitPrice:   p.Price,
		}

		// every requested extra must be an active, non-default association
		chargeable, err := s.CatalogRepo.ChargeableExtras(p.ID, it.ExtraIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range it.ExtraIDs {
			pi, ok := chargeable[id]
			if !ok {
				return nil, validationErr(
					fmt.Sprintf("items[%d].extraIds", i),
					fmt.Sprintf("ingredient %d is not a chargeable extra for product %d", id, p.ID),
				)
			}
			row.extras = append(row.extras, extraRow{
				ingredientID: pi.IngredientID,
				name:         pi.Ingredient.Name,
				unitPrice:    pi.ExtraCost,
			})
		}
		rows = append(rows, row)
	}

	var created entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			OrderNumber:     generateOrderNumber(),
			Status:          entity.OrderStatusPending,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			DeliveryAddress: req.DeliveryAddress,
			DeliveryCity:    req.DeliveryCity,
			DeliveryNotes:   req.DeliveryNotes,
			TotalAmount:     decimal.Zero,
		}
		if userID != 0 {
			uid := userID
			order.UserID = &uid
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		total := decimal.Zero
		for _, r := range rows {
			qty := decimal.NewFromInt(int64(r.qty))
			itemTotal := r.unitPrice.Mul(qty)

			oi := entity.OrderItem{
				OrderID:            order.ID,
				ProductID:          r.productID,
				ProductName:        r.name,
				ProductDescription: r.description,
				Quantity:           r.qty,
				UnitPrice:          r.unitPrice,
			}

			// extras scale with the parent item's quantity
			extrasTotal := decimal.Zero
			for _, ex := range r.extras {
				extrasTotal = extrasTotal.Add(ex.unitPrice.Mul(qty))
			}
			oi.TotalPrice = itemTotal.Add(extrasTotal)
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}

			for _, ex := range r.extras {
				extra := entity.OrderItemExtra{
					OrderItemID:    oi.ID,
					IngredientID:   ex.ingredientID,
					IngredientName: ex.name,
					Quantity:       r.qty,
					UnitPrice:      ex.unitPrice,
					TotalPrice:     ex.unitPrice.Mul(qty),
				}
				if err := s.Repo.CreateOrderItemExtra(tx, &extra); err != nil {
					return err
				}
			}

			total = total.Add(oi.TotalPrice)
		}

		if err := tx.Model(&order).Update("total_amount", total).Error; err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.GetOrder(created.ID)
}

// order numbers are an external convention: ORD- plus 8 hex chars,
// unique-indexed in the orders table.
func generateOrderNumber() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "ORD-" + strings.ToUpper(id[:8])
}

// ----- Status -----

// UpdateStatus only checks enum membership; any known status can follow
// any other (no transition guard, matching current product behavior).
func (s *OrderService) UpdateStatus(orderID uint, status string) (*entity.Order, error) {
	if !entity.IsValidOrderStatus(status) {
		return nil, validationErr("status", fmt.Sprintf("unknown status %q", status))
	}
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.Repo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(orderID)
}

// ----- Reads -----

func (s *OrderService) List(status string) ([]entity.Order, error) {
	if status != "" && !entity.IsValidOrderStatus(status) {
		return nil, validationErr("status", fmt.Sprintf("unknown status %q", status))
	}
	return s.Repo.ListOrders(status)
}

func (s *OrderService) Detail(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForUser(userID)
}

// DetailForUser resolves an order only when it belongs to the caller; a
// foreign order id looks identical to a missing one.
func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// ----- Price preview -----

type PricePreview struct {
	BasePrice   decimal.Decimal `json:"base_price"`
	ExtrasTotal decimal.Decimal `json:"extras_total"`
	Total       decimal.Decimal `json:"total"`
}

// PreviewPrice is a pure read. Unlike order creation it is lenient:
// unknown or ineligible extra ids are silently excluded from the total.
func (s *OrderService) PreviewPrice(productID uint, extraIDs []uint) (*PricePreview, error) {
	p, err := s.CatalogRepo.GetProduct(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !p.IsActive {
		return nil, ErrNotFound
	}

	chargeable, err := s.CatalogRepo.ChargeableExtras(productID, extraIDs)
	if err != nil {
		return nil, err
	}

	extrasTotal := decimal.Zero
	for _, pi := range chargeable {
		extrasTotal = extrasTotal.Add(pi.ExtraCost)
	}

	return &PricePreview{
		BasePrice:   p.Price,
		ExtrasTotal: extrasTotal,
		Total:       p.Price.Add(extrasTotal),
	}, nil
}
