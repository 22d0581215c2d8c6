package v1

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Bigstrengthboys/sweet-shop/internal/api/handler/v1/request"
	"github.com/Bigstrengthboys/sweet-shop/internal/api/handler/v1/response"
	"github.com/Bigstrengthboys/sweet-shop/internal/domain"
	"github.com/Bigstrengthboys/sweet-shop/internal/service"
)

type SweetService interface {
	ListSweets(ctx context.Context, criteria service.FilterCriteria) ([]domain.Sweet, error)
	GetSweet(ctx context.Context, id uint) (domain.Sweet, error)
	CreateSweet(ctx context.Context, sweet domain.Sweet) (domain.Sweet, error)
	UpdateSweet(ctx context.Context, sweet domain.Sweet) (domain.Sweet, error)
	DeleteSweet(ctx context.Context, id uint) error
	RestockSweet(ctx context.Context, id uint, amount int) (domain.Sweet, error)
	Purchase(ctx context.Context, sweetID, userID uint) (domain.Sweet, domain.Purchase, error)
	ListPurchases(ctx context.Context, userID uint) ([]domain.Purchase, error)
}

type SweetHandler struct {
	svc  SweetService
	uSvc UserService
}

func NewSweetHandler(svc SweetService, uSvc UserService) *SweetHandler {
	return &SweetHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

func parseSweetID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("sweetID"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid sweet ID %q", ctx.Param("sweetID"))
	}

	return uint(id), nil
}

func parseFilterCriteria(ctx *gin.Context) (service.FilterCriteria, error) {
	criteria := service.FilterCriteria{
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
		MinPrice: 0,
		MaxPrice: math.MaxFloat64,
	}

	if raw := ctx.Query("min_price"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return service.FilterCriteria{}, fmt.Errorf("invalid min_price %q", raw)
		}
		criteria.MinPrice = min
	}
	if raw := ctx.Query("max_price"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return service.FilterCriteria{}, fmt.Errorf("invalid max_price %q", raw)
		}
		criteria.MaxPrice = max
	}

	return criteria, nil
}

// HandleListSweets godoc
// @Summary      List the sweet catalog
// @Description  Returns sweets newest first, narrowed by the optional search, category and price filters.
// @Tags         sweets
// @Produce      json
// @Param        search     query     string  false  "substring match on the name, case-insensitive"
// @Param        category   query     string  false  "exact category, empty or 'all' for any"
// @Param        min_price  query     number  false  "inclusive lower price bound"
// @Param        max_price  query     number  false  "inclusive upper price bound"
// @Success      200  {array}   domain.Sweet
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sweets [get]
func (h *SweetHandler) HandleListSweets(ctx *gin.Context) {
	criteria, err := parseFilterCriteria(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sweets, err := h.svc.ListSweets(ctx.Request.Context(), criteria)
	if err != nil {
		err = fmt.Errorf("v1.HandleListSweets -> h.svc.ListSweets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sweets)
}

// HandleGetSweet godoc
// @Summary      Get a single sweet
// @Tags         sweets
// @Produce      json
// @Param        sweetID  path      int  true  "sweet ID"
// @Success      200  {object}  domain.Sweet
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sweets/{sweetID} [get]
// @Security BearerAuth
func (h *SweetHandler) HandleGetSweet(ctx *gin.Context) {
	sweetID, err := parseSweetID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sweet, err := h.svc.GetSweet(ctx.Request.Context(), sweetID)
	if err != nil {
		if errors.Is(err, service.ErrSweetNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sweet", "ID", sweetID))
			return
		}

		err = fmt.Errorf("v1.HandleGetSweet -> h.svc.GetSweet -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sweet)
}

// HandleCreateSweet godoc
// @Summary      Create a sweet
// @Description  Admin only.
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Param        request  body      request.SaveSweetRequest  true  "sweet details"
// @Success      201  {object}  domain.Sweet
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sweets [post]
// @Security BearerAuth
func (h *SweetHandler) HandleCreateSweet(ctx *gin.Context) {
	if _, respErr := requireAdmin(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SaveSweetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sweet, err := h.svc.CreateSweet(ctx.Request.Context(), domain.Sweet{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateSweet -> h.svc.CreateSweet -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, sweet)
}

// HandleUpdateSweet godoc
// @Summary      Update a sweet
// @Description  Admin only.
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Param        sweetID  path      int                       true  "sweet ID"
// @Param        request  body      request.SaveSweetRequest  true  "sweet details"
// @Success      200  {object}  domain.Sweet
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sweets/{sweetID} [put]
// @Security BearerAuth
func (h *SweetHandler) HandleUpdateSweet(ctx *gin.Context) {
	if _, respErr := requireAdmin(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sweetID, err := parseSweetID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.SaveSweetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sweet, err := h.svc.UpdateSweet(ctx.Request.Context(), domain.Sweet{
		ID:          sweetID,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrSweetNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sweet", "ID", sweetID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateSweet -> h.svc.UpdateSweet -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sweet)
}

// HandleDeleteSweet godoc
// @Summary      Delete a sweet
// @Description  Admin only.
// @Tags         sweets
// @Produce      json
// @Param        sweetID  path      int  true  "sweet ID"
// @Success      204  "no content"
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sweets/{sweetID} [delete]
// @Security BearerAuth
func (h *SweetHandler) HandleDeleteSweet(ctx *gin.Context) {
	if _, respErr := requireAdmin(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sweetID, err := parseSweetID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteSweet(ctx.Request.Context(), sweetID); err != nil {
		if errors.Is(err, service.ErrSweetNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sweet", "ID", sweetID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteSweet -> h.svc.DeleteSweet -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRestockSweet godoc
// @Summary      Restock a sweet
// @Description  Admin only. Adds the requested quantity to the current stock, 10 when omitted.
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Param        sweetID  path      int                          true   "sweet ID"
// @Param        request  body      request.RestockSweetRequest  false  "restock amount"
// @Success      200  {object}  domain.Sweet
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sweets/{sweetID}/restock [post]
// @Security BearerAuth
func (h *SweetHandler) HandleRestockSweet(ctx *gin.Context) {
	if _, respErr := requireAdmin(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sweetID, err := parseSweetID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req := request.RestockSweetRequest{}
	if ctx.Request.ContentLength > 0 {
		if err = ctx.ShouldBindJSON(&req); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// An absent quantity falls back to the service default.
	amount := 0
	if req.Quantity != nil {
		amount = *req.Quantity
	}

	sweet, err := h.svc.RestockSweet(ctx.Request.Context(), sweetID, amount)
	if err != nil {
		if errors.Is(err, service.ErrSweetNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sweet", "ID", sweetID))
			return
		}

		err = fmt.Errorf("v1.HandleRestockSweet -> h.svc.RestockSweet -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sweet)
}

// HandlePurchaseSweet godoc
// @Summary      Purchase one unit of a sweet
// @Description  Decrements the stock and records the purchase atomically. Out-of-stock sweets return 409.
// @Tags         sweets
// @Produce      json
// @Param        sweetID  path      int  true  "sweet ID"
// @Success      200  {object}  response.PurchaseResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sweets/{sweetID}/purchase [post]
// @Security BearerAuth
func (h *SweetHandler) HandlePurchaseSweet(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sweetID, err := parseSweetID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sweet, purchase, err := h.svc.Purchase(ctx.Request.Context(), sweetID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrSweetNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sweet", "ID", sweetID))
			return
		}
		if errors.Is(err, service.ErrSweetOutOfStock) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrSweetOutOfStock))
			return
		}

		err = fmt.Errorf("v1.HandlePurchaseSweet -> h.svc.Purchase -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.PurchaseResponse{
		Sweet:    sweet,
		Purchase: purchase,
	})
}

// HandleListPurchases godoc
// @Summary      List the current user's purchases
// @Tags         purchases
// @Produce      json
// @Success      200  {array}   domain.Purchase
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /purchases [get]
// @Security BearerAuth
func (h *SweetHandler) HandleListPurchases(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	purchases, err := h.svc.ListPurchases(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListPurchases -> h.svc.ListPurchases -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, purchases)
}
