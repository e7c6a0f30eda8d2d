package http

import (
	"errors"
	"net/http"
	"strconv"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the shop use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerMemberHandler      commands.RegisterMemberCommandHandler
	changeMemberAddressHandler commands.ChangeMemberAddressCommandHandler
	addItemHandler             commands.AddItemCommandHandler
	updateItemHandler          commands.UpdateItemCommandHandler
	placeOrderHandler          commands.PlaceOrderCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler

	// Query handlers
	getAllMembersHandler        queries.GetAllMembersQueryHandler
	getAllItemsHandler          queries.GetAllItemsQueryHandler
	getLowStockItemsHandler     queries.GetLowStockItemsQueryHandler
	searchOrdersHandler         queries.SearchOrdersQueryHandler
	searchOrderSummariesHandler queries.SearchOrderSummariesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerMemberHandler commands.RegisterMemberCommandHandler,
	changeMemberAddressHandler commands.ChangeMemberAddressCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	updateItemHandler commands.UpdateItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getAllMembersHandler queries.GetAllMembersQueryHandler,
	getAllItemsHandler queries.GetAllItemsQueryHandler,
	getLowStockItemsHandler queries.GetLowStockItemsQueryHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
	searchOrderSummariesHandler queries.SearchOrderSummariesQueryHandler,
) *Server {
	return &Server{
		registerMemberHandler:       registerMemberHandler,
		changeMemberAddressHandler:  changeMemberAddressHandler,
		addItemHandler:              addItemHandler,
		updateItemHandler:           updateItemHandler,
		placeOrderHandler:           placeOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		getAllMembersHandler:        getAllMembersHandler,
		getAllItemsHandler:          getAllItemsHandler,
		getLowStockItemsHandler:     getLowStockItemsHandler,
		searchOrdersHandler:         searchOrdersHandler,
		searchOrderSummariesHandler: searchOrderSummariesHandler,
	}
}

// RegisterRoutes mounts all endpoints on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/members", s.RegisterMember)
	v1.PUT("/members/:id/address", s.ChangeMemberAddress)
	v1.GET("/members", s.GetMembers)

	v1.POST("/items", s.AddItem)
	v1.PUT("/items/:id", s.UpdateItem)
	v1.GET("/items", s.GetItems)
	v1.GET("/items/low-stock", s.GetLowStockItems)

	v1.POST("/orders", s.PlaceOrder)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.GET("/orders", s.SearchOrderSummaries)
	v1.GET("/orders/detailed", s.SearchOrders)
}

// RegisterMember handles POST /api/v1/members - registers a new member.
func (s *Server) RegisterMember(ctx echo.Context) error {
	var request RegisterMemberRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address, err := kernel.NewAddress(request.City, request.Street, request.ZipCode)
	if err != nil {
		return badRequest(ctx, "Invalid member address: "+err.Error())
	}

	memberID := kernel.NewUUID()
	cmd, err := commands.NewRegisterMemberCommand(memberID, request.Name, address)
	if err != nil {
		return badRequest(ctx, "Invalid member data: "+err.Error())
	}

	if handleErr := s.registerMemberHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to register member")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: memberID.String()})
}

// ChangeMemberAddress handles PUT /api/v1/members/:id/address.
func (s *Server) ChangeMemberAddress(ctx echo.Context) error {
	memberID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid member ID")
	}

	var request ChangeMemberAddressRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address, err := kernel.NewAddress(request.City, request.Street, request.ZipCode)
	if err != nil {
		return badRequest(ctx, "Invalid member address: "+err.Error())
	}

	cmd, err := commands.NewChangeMemberAddressCommand(memberID, address)
	if err != nil {
		return badRequest(ctx, "Invalid member data: "+err.Error())
	}

	if handleErr := s.changeMemberAddressHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to change member address")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMembers handles GET /api/v1/members - retrieves all members.
func (s *Server) GetMembers(ctx echo.Context) error {
	query := queries.NewGetAllMembersQuery()

	members, err := s.getAllMembersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve members")
	}

	response := make([]Member, len(members))
	for i, m := range members {
		response[i] = Member{
			ID:      m.ID.String(),
			Name:    m.Name,
			City:    m.City,
			Street:  m.Street,
			ZipCode: m.ZipCode,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddItem handles POST /api/v1/items - adds a new catalog item.
func (s *Server) AddItem(ctx echo.Context) error {
	var request AddItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := item.KindFromString(request.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid item kind: "+err.Error())
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddItemCommand(itemID, kind, request.Name, request.Price, request.Stock)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.addItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to add item")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: itemID.String()})
}

// UpdateItem handles PUT /api/v1/items/:id - updates a catalog item.
func (s *Server) UpdateItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid item ID")
	}

	var request UpdateItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateItemCommand(itemID, request.Name, request.Price, request.Stock)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.updateItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to update item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetItems handles GET /api/v1/items - retrieves the whole catalog.
func (s *Server) GetItems(ctx echo.Context) error {
	query := queries.NewGetAllItemsQuery()

	items, err := s.getAllItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve items")
	}

	return ctx.JSON(http.StatusOK, itemsToResponse(items))
}

// GetLowStockItems handles GET /api/v1/items/low-stock?threshold=N.
func (s *Server) GetLowStockItems(ctx echo.Context) error {
	threshold, err := strconv.Atoi(ctx.QueryParam("threshold"))
	if err != nil {
		return badRequest(ctx, "Invalid threshold")
	}

	query, err := queries.NewGetLowStockItemsQuery(threshold)
	if err != nil {
		return badRequest(ctx, "Invalid threshold: "+err.Error())
	}

	items, err := s.getLowStockItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve items")
	}

	response := make([]LowStockItem, len(items))
	for i, it := range items {
		response[i] = LowStockItem{
			ID:    it.ID.String(),
			Name:  it.Name,
			Stock: it.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	memberID, err := kernel.UUIDFromString(request.MemberID)
	if err != nil {
		return badRequest(ctx, "Invalid member ID")
	}

	lines := make([]commands.OrderLineRequest, len(request.Lines))
	for i, line := range request.Lines {
		itemID, lineErr := kernel.UUIDFromString(line.ItemID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid item ID")
		}
		lines[i] = commands.OrderLineRequest{ItemID: itemID, Quantity: line.Quantity}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, memberID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchOrderSummaries handles GET /api/v1/orders - searches orders as flat
// summaries using the batched two-phase projection.
func (s *Server) SearchOrderSummaries(ctx echo.Context) error {
	filter, err := searchFilterFromQuery(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid search filter: "+err.Error())
	}

	query, err := queries.NewSearchOrderSummariesQuery(filter)
	if err != nil {
		return badRequest(ctx, "Invalid search filter: "+err.Error())
	}

	summaries, err := s.searchOrderSummariesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to search orders")
	}

	response := make([]OrderSummary, len(summaries))
	for i, summary := range summaries {
		lines := make([]OrderLine, len(summary.Lines))
		for j, line := range summary.Lines {
			lines[j] = OrderLine{
				ItemName:  line.ItemName,
				UnitPrice: line.UnitPrice,
				Quantity:  line.Quantity,
			}
		}

		response[i] = OrderSummary{
			ID:         summary.ID.String(),
			MemberName: summary.MemberName,
			Status:     summary.Status,
			OrderDate:  summary.OrderDate,
			City:       summary.City,
			Street:     summary.Street,
			ZipCode:    summary.ZipCode,
			TotalPrice: summary.TotalPrice,
			Lines:      lines,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SearchOrders handles GET /api/v1/orders/detailed - searches orders as full
// aggregates loaded eagerly with delivery and lines.
func (s *Server) SearchOrders(ctx echo.Context) error {
	filter, err := searchFilterFromQuery(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid search filter: "+err.Error())
	}

	query, err := queries.NewSearchOrdersQuery(filter)
	if err != nil {
		return badRequest(ctx, "Invalid search filter: "+err.Error())
	}

	orders, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to search orders")
	}

	response := make([]OrderSummary, len(orders))
	for i, aggregate := range orders {
		lines := make([]OrderLine, len(aggregate.Lines()))
		for j, line := range aggregate.Lines() {
			lines[j] = OrderLine{
				ItemID:    line.ItemID().String(),
				UnitPrice: line.UnitPrice(),
				Quantity:  line.Quantity(),
			}
		}

		address := aggregate.Delivery().Address()
		response[i] = OrderSummary{
			ID:         aggregate.ID().String(),
			MemberID:   aggregate.MemberID().String(),
			Status:     aggregate.Status().String(),
			OrderDate:  aggregate.OrderDate(),
			City:       address.City(),
			Street:     address.Street(),
			ZipCode:    address.ZipCode(),
			TotalPrice: aggregate.TotalPrice(),
			Lines:      lines,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func searchFilterFromQuery(ctx echo.Context) (order.SearchFilter, error) {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return order.SearchFilter{}, err
		}
		status = &parsed
	}

	offset := 0
	if raw := ctx.QueryParam("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return order.SearchFilter{}, err
		}
		offset = parsed
	}

	limit := order.DefaultSearchLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return order.SearchFilter{}, err
		}
		limit = parsed
	}

	return order.NewSearchFilter(ctx.QueryParam("memberName"), status, offset, limit)
}

func itemsToResponse(items []queries.GetAllItemsQueryResponse) []Item {
	response := make([]Item, len(items))
	for i, it := range items {
		response[i] = Item{
			ID:    it.ID.String(),
			Kind:  it.Kind,
			Name:  it.Name,
			Price: it.Price,
			Stock: it.Stock,
		}
	}
	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// domainError translates use case failures into HTTP status codes.
func domainError(ctx echo.Context, err error, message string) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrDuplicateMemberName),
		errors.Is(err, item.ErrInsufficientStock),
		errors.Is(err, order.ErrOrderAlreadyCancelled):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message + ": " + err.Error(),
	})
}
