package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrijs2005/housesell/internal/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	saleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3")).Bold(true)
	rentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

var money = message.NewPrinter(language.AmericanEnglish)

// formatMoney renders an amount with thousands separators; cents are shown
// only when present. Whole amounts are printed as floats so that values past
// the int64 range keep their sign.
func formatMoney(v float64) string {
	if v == math.Trunc(v) {
		return money.Sprintf("$%.0f", v)
	}
	return money.Sprintf("$%.2f", v)
}

// formatPrice is the listing price as shown to buyers; rents are monthly.
func formatPrice(p models.Property) string {
	s := formatMoney(p.Price)
	if p.Type == models.PropertyTypeRent {
		s += "/month"
	}
	return s
}

func typeBadge(t models.PropertyType) string {
	switch t {
	case models.PropertyTypeSale:
		return saleStyle.Render("For Sale")
	case models.PropertyTypeRent:
		return rentStyle.Render("For Rent")
	}
	return string(t)
}

func strengthStyle(s models.PasswordStrength) lipgloss.Style {
	switch {
	case s.Score >= 100:
		return successStyle
	case s.Score >= 75:
		return saleStyle
	case s.Score >= 50:
		return rentStyle
	}
	return errorStyle
}

func renderTable(props []models.Property) string {
	rows := make([][]string, 0, len(props))
	for _, p := range props {
		rows = append(rows, []string{
			p.ID,
			p.Title,
			p.Location,
			typeBadge(p.Type),
			formatPrice(p),
			fmt.Sprintf("%d bd / %d ba", p.Bedrooms, p.Bathrooms),
			fmt.Sprintf("%d sqft", p.Area),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "LOCATION", "TYPE", "PRICE", "ROOMS", "AREA").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

func renderDetail(p models.Property, owned bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", titleStyle.Render(p.Title), typeBadge(p.Type))
	fmt.Fprintf(&b, "%s\n\n", mutedStyle.Render(p.Location))
	fmt.Fprintf(&b, "Price:      %s\n", formatPrice(p))
	fmt.Fprintf(&b, "Bedrooms:   %d\n", p.Bedrooms)
	fmt.Fprintf(&b, "Bathrooms:  %d\n", p.Bathrooms)
	fmt.Fprintf(&b, "Area:       %s sq ft\n", money.Sprintf("%d", p.Area))
	if p.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Description)
	}
	fmt.Fprintf(&b, "\nContact:    %s\n", p.Contact)
	fmt.Fprintf(&b, "Listed by:  %s on %s\n", p.OwnerEmail, p.CreatedAt.Format("Jan 2, 2006"))
	if !p.UpdatedAt.Equal(p.CreatedAt) {
		fmt.Fprintf(&b, "Updated:    %s\n", p.UpdatedAt.Format("Jan 2, 2006"))
	}
	if len(p.Images) > 0 {
		b.WriteString("\nImages:\n")
		for _, img := range p.Images {
			fmt.Fprintf(&b, "  %s\n", img)
		}
	}
	fmt.Fprintf(&b, "\nID: %s\n", p.ID)
	if owned {
		b.WriteString(mutedStyle.Render("You own this listing: 'edit "+p.ID+"' or 'delete "+p.ID+"'") + "\n")
	}
	return b.String()
}

func renderStats(st models.OwnerStats) string {
	return fmt.Sprintf("%s  total: %d  for sale: %d  for rent: %d  total value: %s",
		titleStyle.Render("My properties"), st.Total, st.ForSale, st.ForRent, formatMoney(st.TotalValue))
}
