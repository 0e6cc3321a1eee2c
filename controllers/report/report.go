// Package reportControllers serves the internal read-only reports that stand
// in for an admin UI. Both endpoints are API-key protected and stream an
// .xlsx download.
package reportControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/dammyprolific/shopWithDammy/store"
)

func writeWorkbook(c *gin.Context, filename string, file *xlsx.File) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}

// ExportProducts dumps the full catalog.
func ExportProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := products.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Slug", "Category", "Price", "Description", "Image"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for i := range all {
			p := &all[i]
			row := sheet.AddRow()
			row.AddCell().SetValue(int(p.ID))
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Slug)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Price.StringFixed(2))
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.ImageURL())
		}

		writeWorkbook(c, "products.xlsx", file)
	}
}

// ExportTransactions dumps every payment attempt, newest first.
func ExportTransactions(transactions store.TransactionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := transactions.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Transactions")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"Ref", "UserID", "CartID", "Amount", "Currency", "Status", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for i := range all {
			t := &all[i]
			row := sheet.AddRow()
			row.AddCell().SetValue(t.Ref)
			row.AddCell().SetValue(int(t.UserID))
			row.AddCell().SetValue(int(t.CartID))
			row.AddCell().SetValue(t.FormattedAmount())
			row.AddCell().SetValue(t.Currency)
			row.AddCell().SetValue(t.Status)
			row.AddCell().SetValue(t.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		writeWorkbook(c, "transactions.xlsx", file)
	}
}
