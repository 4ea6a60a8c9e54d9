package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hitesh009911/grub-stack-00-sub001/models"
	"github.com/hitesh009911/grub-stack-00-sub001/stores"
	"github.com/hitesh009911/grub-stack-00-sub001/utils"
)

type CartController struct {
	Cart *stores.CartStore
}

func NewCartController(cart *stores.CartStore) *CartController {
	return &CartController{Cart: cart}
}

func (cc *CartController) cartPayload() gin.H {
	return gin.H{
		"items":              cc.Cart.Items(),
		"total_items":        cc.Cart.TotalItems(),
		"total_price":        cc.Cart.TotalPrice(),
		"current_restaurant": cc.Cart.CurrentRestaurant(),
	}
}

func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart", cc.cartPayload())
}

// AddItem -> same menu item merges into one line with a higher
// quantity; a new item starts at quantity 1.
func (cc *CartController) AddItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Cart.Add(item)
	utils.RespondJSON(c, http.StatusCreated, "Item added", cc.cartPayload())
}

// UpdateItem -> set a line's quantity; zero removes it.
func (cc *CartController) UpdateItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Cart.UpdateQuantity(uint(itemID), input.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Item updated", cc.cartPayload())
}

func (cc *CartController) DeleteItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Cart.Remove(uint(itemID))
	utils.RespondJSON(c, http.StatusOK, "Item removed", cc.cartPayload())
}

func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Cart.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cc.cartPayload())
}
