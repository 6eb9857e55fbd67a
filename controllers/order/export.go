package ordercontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Niharikabutola/ECO-CART/services"
)

// ExportOrdersToExcel streams the order log as a spreadsheet download, one
// row per order.
func ExportOrdersToExcel(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := cart.Orders()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Items", "TotalAmount", "EcoPoints", "Date"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, item.Product.Name+" x"+strconv.Itoa(item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, "; "))

			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.EcoPoints)
			row.AddCell().SetValue(o.Date.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
