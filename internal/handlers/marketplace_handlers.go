package handlers

import (
	"net/http"

	"github.com/cyphera/marketplace-api/internal/helpers"
	"github.com/cyphera/marketplace-api/internal/interfaces"
	"github.com/cyphera/marketplace-api/internal/types/api/params"
	"github.com/cyphera/marketplace-api/internal/types/api/requests"
	"github.com/cyphera/marketplace-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
)

// MarketplaceHandler exposes the marketplace contract over HTTP.
type MarketplaceHandler struct {
	service interfaces.MarketplaceService
}

func NewMarketplaceHandler(service interfaces.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{service: service}
}

// GetItems godoc
// @Summary List marketplace listings
// @Description Returns every existing listing, including sold out ones, in id order
// @Tags marketplace
// @Produce json
// @Success 200 {array} responses.ListingResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /marketplace/items [get]
func (h *MarketplaceHandler) GetItems(c *gin.Context) {
	listings, err := h.service.ListListings(c.Request.Context())
	if err != nil {
		sendError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToListingResponses(listings))
}

// ListItem godoc
// @Summary Prepare a listing
// @Description Returns the unsigned approve transaction, when the allowance is short, followed by the unsigned listItem transaction.
// @Description Amount is in token units and price in ether.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body requests.ListItemRequest true "Listing"
// @Success 201 {array} responses.ResponseItem
// @Failure 400 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /marketplace/list [post]
func (h *MarketplaceHandler) ListItem(c *gin.Context) {
	var req requests.ListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(c, err)
		return
	}

	items, err := h.service.ListItem(c.Request.Context(), params.ListItemParams{
		Token:  req.Token,
		Amount: req.Amount.String(),
		Price:  req.Price.String(),
		Owner:  req.OwnerAddress,
	})
	if err != nil {
		sendError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToResponseItems(items))
}

// ListItemBehalf godoc
// @Summary List on the owner's behalf
// @Description Submits listItemBehalf with the service key once the owner's allowance covers the amount.
// @Description Otherwise returns only the approve step and submits nothing.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body requests.ListItemBehalfRequest true "Signed listing"
// @Success 201 {array} responses.ResponseItem
// @Failure 400 {object} responses.ErrorResponse
// @Failure 422 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /marketplace/listBehalf [post]
func (h *MarketplaceHandler) ListItemBehalf(c *gin.Context) {
	var req requests.ListItemBehalfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(c, err)
		return
	}

	outcome, err := h.service.ListItemBehalf(c.Request.Context(), params.ListItemBehalfParams{
		Token:     req.Token,
		Amount:    req.Amount.String(),
		Price:     req.Price.String(),
		Signature: req.Signature,
		Owner:     req.OwnerAddress,
	})
	if err != nil {
		sendError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToResponseItems(helpers.OutcomeToResponseItems(outcome)))
}

// PurchaseItem godoc
// @Summary Prepare a purchase
// @Description Returns the unsigned purchaseItem transaction carrying value wei
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body requests.PurchaseItemRequest true "Purchase"
// @Success 200 {object} responses.ResponseItem
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /marketplace/purchase [post]
func (h *MarketplaceHandler) PurchaseItem(c *gin.Context) {
	var req requests.PurchaseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(c, err)
		return
	}

	item, err := h.service.PurchaseItem(c.Request.Context(), params.PurchaseItemParams{
		ListingID: *req.ListingID,
		Value:     req.Value.String(),
	})
	if err != nil {
		sendError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToResponseItem(item))
}

// WithdrawFunds godoc
// @Summary Prepare an earnings withdrawal
// @Description Returns the unsigned withdrawFunds transaction for a seller with positive earnings
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body requests.WithdrawFundsRequest true "Seller"
// @Success 200 {object} responses.ResponseItem
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /marketplace/withdraw [post]
func (h *MarketplaceHandler) WithdrawFunds(c *gin.Context) {
	var req requests.WithdrawFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(c, err)
		return
	}

	item, err := h.service.WithdrawFunds(c.Request.Context(), params.WithdrawFundsParams{Signer: req.SignerAddress})
	if err != nil {
		sendError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToResponseItem(item))
}

// Transfer godoc
// @Summary Relay a signed transfer
// @Description Verifies that from signed the canonical transfer message and submits transferWithSignature with the service key
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body requests.TransferRequest true "Signed transfer"
// @Success 200 {object} responses.ResponseItem
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 422 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /marketplace/transfer [post]
func (h *MarketplaceHandler) Transfer(c *gin.Context) {
	var req requests.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(c, err)
		return
	}

	outcome, err := h.service.TransferWithSignature(c.Request.Context(), params.TransferParams{
		Token:     req.Token,
		From:      req.From,
		To:        req.To,
		Amount:    req.Amount.String(),
		Price:     req.Price.String(),
		Nonce:     *req.Nonce,
		Signature: req.Signature,
	})
	if err != nil {
		sendError(c, err)
		return
	}

	items := helpers.OutcomeToResponseItems(outcome)
	if len(items) == 0 {
		sendSuccess(c, http.StatusOK, responses.ResponseItem{})
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToResponseItem(items[0]))
}

// GetEarnings godoc
// @Summary Read seller earnings
// @Description Returns the withdrawable balance of an address in wei
// @Tags marketplace
// @Produce json
// @Param address path string true "Seller address"
// @Success 200 {object} responses.EarningsResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /marketplace/earnings/{address} [get]
func (h *MarketplaceHandler) GetEarnings(c *gin.Context) {
	address := c.Param("address")
	earnings, err := h.service.GetEarnings(c.Request.Context(), address)
	if err != nil {
		sendError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.EarningsResponse{
		Address:  address,
		Earnings: earnings.String(),
	})
}
