package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sajid-inmogr/admin-backend/internal/domain"
	"github.com/sajid-inmogr/admin-backend/internal/repository"
	"github.com/sajid-inmogr/admin-backend/internal/service"
)

// Client CRUD mirrors the announcement lifecycle: the logo image is
// mandatory on create, replace-only on update, and removed from the
// store after the row delete is confirmed.

func (h *Handler) CreateClient(c *gin.Context) {
	stored, err := h.uploads.Receive(c.Request.Context(), c.Request, "file")
	if err != nil {
		h.log.Error("Client upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": uploadMessage(err)})
		return
	}

	client := &domain.Client{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		ImageName:   c.PostForm("image_name"),
		ImageLink:   stored.Link,
		AssetID:     stored.AssetID,
	}

	if err := h.clients.Create(c.Request.Context(), client); err != nil {
		h.log.Error("Failed to create client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"result":  client,
	})
}

func (h *Handler) GetClientByID(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Error getting client"})
		return
	}

	client, err := h.clients.FindByID(c.Request.Context(), id, "Products")
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Error getting client"})
			return
		}
		h.log.Error("Failed to get client", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error getting client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"result":  client,
	})
}

func (h *Handler) GetAllClients(c *gin.Context) {
	clients, err := h.clients.FindAll(c.Request.Context(), "Products")
	if err != nil {
		h.log.Error("Failed to list clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error getting clients"})
		return
	}
	if len(clients) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Error getting clients/no clients found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"clients": clients,
	})
}

func (h *Handler) UpdateClientByID(c *gin.Context) {
	stored, err := h.uploads.Receive(c.Request.Context(), c.Request, "file")
	if err != nil && !errors.Is(err, service.ErrNoFile) {
		h.log.Error("Client upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": uploadMessage(err)})
		return
	}

	client := h.resolveClient(c)
	if client == nil {
		if stored != nil {
			h.uploads.Discard(stored.AssetID)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot find client"})
		return
	}

	client.Name = c.PostForm("name")
	client.Description = c.PostForm("description")

	oldAssetID := ""
	if stored != nil {
		oldAssetID = client.AssetID
		client.ImageName = c.PostForm("image_name")
		client.ImageLink = stored.Link
		client.AssetID = stored.AssetID
	}

	if err := h.clients.Save(c.Request.Context(), client); err != nil {
		h.log.Error("Failed to update client", zap.Int64("id", client.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating client"})
		return
	}

	if oldAssetID != "" {
		h.uploads.Discard(oldAssetID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"result":  client,
	})
}

func (h *Handler) DeleteClientByID(c *gin.Context) {
	client := h.resolveClient(c)
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cannot find client"})
		return
	}

	if err := h.clients.Delete(c.Request.Context(), client.ID); err != nil {
		h.log.Error("Failed to delete client", zap.Int64("id", client.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting client"})
		return
	}

	h.uploads.Discard(client.AssetID)

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}

func (h *Handler) GetClientProducts(c *gin.Context) {
	client := h.resolveClient(c)
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cannot find client"})
		return
	}

	products, err := h.products.ByClient(c.Request.Context(), client.ID)
	if err != nil {
		h.log.Error("Failed to list products", zap.Int64("client_id", client.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error getting products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "success",
		"products": products,
	})
}

type productIn struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// UpdateClientProducts replaces the client's product set with the one
// in the JSON body.
func (h *Handler) UpdateClientProducts(c *gin.Context) {
	client := h.resolveClient(c)
	if client == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot find client"})
		return
	}

	var in []productIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid products payload"})
		return
	}

	products := make([]domain.Product, len(in))
	for i, p := range in {
		products[i] = domain.Product{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		}
	}

	updated, err := h.products.ReplaceForClient(c.Request.Context(), client.ID, products)
	if err != nil {
		h.log.Error("Failed to update products", zap.Int64("client_id", client.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "success",
		"products": updated,
	})
}

func (h *Handler) resolveClient(c *gin.Context) *domain.Client {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return nil
	}
	client, err := h.clients.FindByID(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.log.Error("Failed to find client", zap.Int64("id", id), zap.Error(err))
		}
		return nil
	}
	return client
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
