// Package http provides the inbound HTTP adapter. It translates JSON requests
// into commands and queries, and business-rule failures into HTTP status
// codes: parameter validation maps to 400, missing entities to 404 and state
// conflicts (shipped order, short stock, discontinued product) to 409.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	addOrderLineHandler   commands.AddOrderLineCommandHandler
	recordShipmentHandler commands.RecordShipmentCommandHandler

	// Query handlers
	getUnshippedOrdersHandler  queries.GetUnshippedOrdersQueryHandler
	getLowStockProductsHandler queries.GetLowStockProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderLineHandler commands.AddOrderLineCommandHandler,
	recordShipmentHandler commands.RecordShipmentCommandHandler,
	getUnshippedOrdersHandler queries.GetUnshippedOrdersQueryHandler,
	getLowStockProductsHandler queries.GetLowStockProductsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		addOrderLineHandler:        addOrderLineHandler,
		recordShipmentHandler:      recordShipmentHandler,
		getUnshippedOrdersHandler:  getUnshippedOrdersHandler,
		getLowStockProductsHandler: getLowStockProductsHandler,
	}
}

// RegisterRoutes binds all ordering endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/lines", s.AddOrderLine)
	api.POST("/orders/:id/shipment", s.RecordShipment)
	api.GET("/orders/unshipped", s.GetUnshippedOrders)
	api.GET("/products/low-stock", s.GetLowStockProducts)
}

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	CustomerID string `json:"customerId"`
}

// NewOrderLine is the request body for adding a line to an order.
type NewOrderLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Order is the JSON representation of an order.
type Order struct {
	ID           int        `json:"id"`
	CustomerID   string     `json:"customerId"`
	EntryDate    time.Time  `json:"entryDate"`
	ShippedDate  *time.Time `json:"shippedDate,omitempty"`
	DiscountRate string     `json:"discountRate"`
	Address      Address    `json:"deliveryAddress"`
}

// Address is the JSON representation of a delivery address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
}

// OrderLine is the JSON representation of an order line.
type OrderLine struct {
	ID        int `json:"id"`
	OrderID   int `json:"orderId"`
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// UnshippedOrder is one row of the unshipped orders report.
type UnshippedOrder struct {
	ID         int       `json:"id"`
	CustomerID string    `json:"customerId"`
	EntryDate  time.Time `json:"entryDate"`
}

// LowStockProduct is one row of the replenishment report.
type LowStockProduct struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	UnitsInStock int    `json:"unitsInStock"`
	UnitsOnOrder int    `json:"unitsOnOrder"`
	ReorderLevel int    `json:"reorderLevel"`
}

// CreateOrder handles POST /api/v1/orders - opens a new order for a customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.NewCustomerID(newOrder.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// AddOrderLine handles POST /api/v1/orders/:id/lines - adds a line to an
// unshipped order.
func (s *Server) AddOrderLine(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var newLine NewOrderLine
	if err = ctx.Bind(&newLine); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.NewID(newLine.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid line data: "+err.Error())
	}

	cmd, err := commands.NewAddOrderLineCommand(orderID, productID, newLine.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid line data: "+err.Error())
	}

	added, err := s.addOrderLineHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderLine{
		ID:        added.ID().Value(),
		OrderID:   added.OrderID().Value(),
		ProductID: added.ProductID().Value(),
		Quantity:  added.Quantity(),
	})
}

// RecordShipment handles POST /api/v1/orders/:id/shipment - marks an order as
// shipped and decrements product stock.
func (s *Server) RecordShipment(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	cmd, err := commands.NewRecordShipmentCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	shipped, err := s.recordShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(shipped))
}

// GetUnshippedOrders handles GET /api/v1/orders/unshipped - retrieves all
// orders awaiting shipment.
func (s *Server) GetUnshippedOrders(ctx echo.Context) error {
	query := queries.NewGetUnshippedOrdersQuery()

	orders, err := s.getUnshippedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]UnshippedOrder, len(orders))
	for i, o := range orders {
		response[i] = UnshippedOrder{
			ID:         o.ID.Value(),
			CustomerID: o.CustomerID.String(),
			EntryDate:  o.EntryDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLowStockProducts handles GET /api/v1/products/low-stock - retrieves
// active products below their reorder level.
func (s *Server) GetLowStockProducts(ctx echo.Context) error {
	query := queries.NewGetLowStockProductsQuery()

	products, err := s.getLowStockProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve products",
		})
	}

	response := make([]LowStockProduct, len(products))
	for i, p := range products {
		response[i] = LowStockProduct{
			ID:           p.ID.Value(),
			Name:         p.Name,
			UnitsInStock: p.UnitsInStock,
			UnitsOnOrder: p.UnitsOnOrder,
			ReorderLevel: p.ReorderLevel,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderToResponse(o *order.Order) Order {
	return Order{
		ID:           o.ID().Value(),
		CustomerID:   o.CustomerID().String(),
		EntryDate:    o.EntryDate(),
		ShippedDate:  o.ShippedDate(),
		DiscountRate: o.DiscountRate().String(),
		Address: Address{
			Street:     o.DeliveryAddress().Street(),
			City:       o.DeliveryAddress().City(),
			PostalCode: o.DeliveryAddress().PostalCode(),
		},
	}
}

func pathID(ctx echo.Context, name string) (kernel.ID, error) {
	raw, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return kernel.ID{}, err
	}

	return kernel.NewID(raw)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// businessError maps use-case failures onto HTTP status codes by error kind.
func businessError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
