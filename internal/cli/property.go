package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/housesell/internal/common"
	"github.com/dmitrijs2005/housesell/internal/models"
	"github.com/dmitrijs2005/housesell/internal/services"
)

// List prints every listing, newest first.
func (a *App) List(ctx context.Context) error {
	props, err := a.listings.List(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	a.renderList(props, "No properties listed yet.")
	return nil
}

// Search prompts for filter criteria and prints the matching listings.
func (a *App) Search(ctx context.Context) error {
	location, err := getSimpleText(a.reader, "Location contains (blank for any)", a.out)
	if err != nil {
		return err
	}
	typ, err := getSimpleText(a.reader, "Type: sale or rent (blank for any)", a.out)
	if err != nil {
		return err
	}
	maxPrice, err := getSimpleText(a.reader, "Max price (blank for any)", a.out)
	if err != nil {
		return err
	}
	minBeds, err := getSimpleText(a.reader, "Min bedrooms (blank for any)", a.out)
	if err != nil {
		return err
	}

	c, err := models.ParseCriteria(location, typ, maxPrice, minBeds)
	if err != nil {
		return a.fail(ctx, err)
	}

	props, err := a.listings.List(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	a.renderList(services.Filter(props, c), "No properties match your search.")
	return nil
}

// Show prints one listing in full.
func (a *App) Show(ctx context.Context, id string) error {
	id, err := a.resolveID(id)
	if err != nil {
		return err
	}

	p, err := a.listings.Get(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}

	owned := false
	if u := a.currentUser(); u != nil {
		owned = u.ID == p.OwnerID
	}
	fmt.Fprint(a.out, renderDetail(p, owned))
	return nil
}

// Add prompts for a new listing and creates it for the current user.
func (a *App) Add(ctx context.Context) error {
	owner := a.currentUser()
	if owner == nil {
		return a.fail(ctx, common.ErrNotAuthenticated)
	}

	form, err := a.promptForm(nil)
	if err != nil {
		return err
	}
	in, err := models.ParsePropertyForm(form)
	if err != nil {
		return a.fail(ctx, err)
	}

	p, err := a.listings.Create(ctx, in, owner)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.success(fmt.Sprintf("Property listed: %s (id %s)", p.Title, p.ID))
	return nil
}

// Edit prompts for new values of one of the current user's listings. Blank
// answers keep the current value.
func (a *App) Edit(ctx context.Context, id string) error {
	requester := a.currentUser()
	if requester == nil {
		return a.fail(ctx, common.ErrNotAuthenticated)
	}
	id, err := a.resolveID(id)
	if err != nil {
		return err
	}

	current, err := a.listings.EditableBy(ctx, id, requester)
	if err != nil {
		return a.fail(ctx, err)
	}

	existing := models.FormFromProperty(current)
	form, err := a.promptForm(&existing)
	if err != nil {
		return err
	}
	in, err := models.ParsePropertyForm(form)
	if err != nil {
		return a.fail(ctx, err)
	}

	p, err := a.listings.Update(ctx, id, in, requester)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.success("Property updated: " + p.Title)
	return nil
}

// Delete removes one of the current user's listings after confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	requester := a.currentUser()
	if requester == nil {
		return a.fail(ctx, common.ErrNotAuthenticated)
	}
	id, err := a.resolveID(id)
	if err != nil {
		return err
	}

	p, err := a.listings.EditableBy(ctx, id, requester)
	if err != nil {
		return a.fail(ctx, err)
	}

	ok, err := confirm(a.reader, fmt.Sprintf("Delete %q?", p.Title), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.listings.Delete(ctx, id, requester); err != nil {
		return a.fail(ctx, err)
	}

	a.success("Property deleted")
	return nil
}

// Mine prints the current user's listings and their summary.
func (a *App) Mine(ctx context.Context) error {
	u := a.currentUser()
	if u == nil {
		return a.fail(ctx, common.ErrNotAuthenticated)
	}

	props, err := a.listings.ListByOwner(ctx, u.ID)
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintln(a.out, renderStats(services.Stats(props)))
	a.renderList(props, "You haven't listed any properties yet. Use 'add' to create one.")
	return nil
}

func (a *App) resolveID(id string) (string, error) {
	if id != "" {
		return id, nil
	}
	id, err := getSimpleText(a.reader, "Enter property id", a.out)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errors.New("no property id given")
	}
	return id, nil
}

func (a *App) renderList(props []models.Property, empty string) {
	if len(props) == 0 {
		fmt.Fprintln(a.out, mutedStyle.Render(empty))
		return
	}
	fmt.Fprintln(a.out, renderTable(props))
	fmt.Fprintf(a.out, "%d properties\n", len(props))
}

// promptForm asks for every listing field. With defaults set, each prompt
// shows the current value and a blank answer keeps it.
func (a *App) promptForm(defaults *models.PropertyForm) (models.PropertyForm, error) {
	var f models.PropertyForm
	if defaults != nil {
		f = *defaults
	}

	fields := []struct {
		label string
		dst   *string
	}{
		{"Title", &f.Title},
		{"Description", &f.Description},
		{"Price (USD)", &f.Price},
		{"Location", &f.Location},
		{"Type (sale or rent)", &f.Type},
		{"Bedrooms", &f.Bedrooms},
		{"Bathrooms", &f.Bathrooms},
		{"Area (sq ft)", &f.Area},
		{"Contact (blank for your email)", &f.Contact},
	}

	for _, fld := range fields {
		prompt := fld.label
		if defaults != nil && *fld.dst != "" {
			prompt = fmt.Sprintf("%s [%s]", fld.label, *fld.dst)
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return models.PropertyForm{}, err
		}
		if defaults == nil || v != "" {
			*fld.dst = v
		}
	}

	imgPrompt := "Image URLs, one per line"
	if defaults != nil {
		imgPrompt = fmt.Sprintf("Image URLs, one per line (empty keeps the current %d, '-' removes all)", len(defaults.Images))
	}
	images, err := getLines(a.reader, imgPrompt, a.out)
	if err != nil {
		return models.PropertyForm{}, err
	}
	switch {
	case len(images) == 1 && strings.TrimSpace(images[0]) == "-":
		f.Images = []string{}
	case len(images) > 0 || defaults == nil:
		f.Images = images
	}

	return f, nil
}
