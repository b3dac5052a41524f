package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderdomain "github.com/smallbiznis/folio/internal/order/domain"
)

type createPurchaseRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount"`
	TaxAmount   int64  `json:"tax_amount"`
	TaxLabel    string `json:"tax_label"`
	FreeTrial   bool   `json:"free_trial"`
}

type createOrderRequest struct {
	OrderNumber        string                  `json:"order_number"`
	BuyerName          string                  `json:"buyer_name"`
	BuyerEmail         string                  `json:"buyer_email" binding:"required,email"`
	BuyerStreet        string                  `json:"buyer_street"`
	BuyerCity          string                  `json:"buyer_city"`
	BuyerZip           string                  `json:"buyer_zip"`
	BuyerCountry       string                  `json:"buyer_country"`
	BuyerState         string                  `json:"buyer_state"`
	BuyerBusinessTaxID string                  `json:"buyer_business_tax_id"`
	SellerName         string                  `json:"seller_name" binding:"required"`
	SellerEmail        string                  `json:"seller_email"`
	SellerCountry      string                  `json:"seller_country" binding:"required"`
	Currency           string                  `json:"currency" binding:"required"`
	DirectToConsumer   bool                    `json:"direct_to_consumer"`
	AdditionalNotes    string                  `json:"additional_notes"`
	PaymentMethod      string                  `json:"payment_method"`
	ShippingAmount     int64                   `json:"shipping_amount"`
	Purchases          []createPurchaseRequest `json:"purchases" binding:"required,min=1"`
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", err.Error()))
		return
	}

	record := &orderdomain.Record{
		Order: orderdomain.Order{
			OrderNumber:        req.OrderNumber,
			BuyerName:          req.BuyerName,
			BuyerEmail:         req.BuyerEmail,
			BuyerStreet:        req.BuyerStreet,
			BuyerCity:          req.BuyerCity,
			BuyerZip:           req.BuyerZip,
			BuyerCountry:       req.BuyerCountry,
			BuyerState:         req.BuyerState,
			BuyerBusinessTaxID: req.BuyerBusinessTaxID,
			SellerName:         req.SellerName,
			SellerEmail:        req.SellerEmail,
			SellerCountry:      req.SellerCountry,
			Currency:           req.Currency,
			DirectToConsumer:   req.DirectToConsumer,
			AdditionalNotes:    req.AdditionalNotes,
			PaymentMethod:      req.PaymentMethod,
			ShippingAmount:     req.ShippingAmount,
		},
	}
	for _, purchase := range req.Purchases {
		record.Purchases = append(record.Purchases, orderdomain.Purchase{
			Description: purchase.Description,
			Amount:      purchase.Amount,
			TaxAmount:   purchase.TaxAmount,
			TaxLabel:    purchase.TaxLabel,
			FreeTrial:   purchase.FreeTrial,
		})
	}

	created, err := s.orderSvc.Create(c.Request.Context(), record)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created.Order})
}

func (s *Server) GetOrderByID(c *gin.Context) {
	record, err := s.orderSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"order":     record.Order,
			"purchases": record.Purchases,
		},
	})
}

func (s *Server) ListOrders(c *gin.Context) {
	var req orderdomain.ListOrderRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", err.Error()))
		return
	}

	resp, err := s.orderSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
