package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Stas75687876/verceldingsdabumsda/models"
)

// GET /api/orders/export
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Abrufen der Bestellungen"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Bestellungen")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Excel-Datei konnte nicht erstellt werden"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Kunde", "E-Mail", "Summe", "Status", "Zahlungsstatus",
			"Positionen", "Notizen", "Erstellt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerEmail)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentStatus))

			var positions []string
			for _, item := range o.Items {
				positions = append(positions,
					strconv.Itoa(int(item.ProductID))+"x"+strconv.Itoa(item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(positions, ","))

			row.AddCell().SetValue(o.Notes)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Excel-Datei konnte nicht geschrieben werden"})
		}
	}
}
