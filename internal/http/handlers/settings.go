package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/settings/banks
func GetBankAccounts(c *gin.Context) {
	list, err := repositories.SettingsRepository{}.ListBankAccounts()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type bankAccountPayload struct {
	BankName      string `json:"bankName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	AccountName   string `json:"accountName" binding:"required"`
	LogoURL       string `json:"logoUrl"`
}

// POST /api/dashboard/settings/banks
func CreateBankAccount(c *gin.Context) {
	var payload bankAccountPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	id, err := repositories.SettingsRepository{}.CreateBankAccount(domain.BankAccount{
		BankName:      strings.TrimSpace(payload.BankName),
		AccountNumber: strings.TrimSpace(payload.AccountNumber),
		AccountName:   strings.TrimSpace(payload.AccountName),
		LogoURL:       payload.LogoURL,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "rekening ditambahkan", "id": id})
}

// DELETE /api/dashboard/settings/banks/:id
func DeleteBankAccount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	if err := (repositories.SettingsRepository{}).DeleteBankAccount(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rekening dihapus"})
}

// GET /api/settings/contact
func GetContactInfo(c *gin.Context) {
	var info domain.ContactInfo
	err := repositories.SettingsRepository{}.GetSetting(repositories.SettingContactInfo, &info)
	if err != nil && !domain.IsNotFound(err) {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// PUT /api/dashboard/settings/contact
func UpdateContactInfo(c *gin.Context) {
	var info domain.ContactInfo
	if !BindJSONOrError(c, &info) {
		return
	}
	if err := (repositories.SettingsRepository{}).PutSetting(repositories.SettingContactInfo, info); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kontak diperbarui"})
}

// GET /api/settings/terms
func GetTerms(c *gin.Context) {
	var terms domain.TermsContent
	err := repositories.SettingsRepository{}.GetSetting(repositories.SettingTerms, &terms)
	if err != nil && !domain.IsNotFound(err) {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, terms)
}

// PUT /api/dashboard/settings/terms
func UpdateTerms(c *gin.Context) {
	var terms domain.TermsContent
	if !BindJSONOrError(c, &terms) {
		return
	}
	if err := (repositories.SettingsRepository{}).PutSetting(repositories.SettingTerms, terms); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "syarat & ketentuan diperbarui"})
}
