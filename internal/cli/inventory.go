package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/drawerfinder/internal/common"
	"github.com/dmitrijs2005/drawerfinder/internal/models"
	"github.com/dmitrijs2005/drawerfinder/internal/search"
)

// Find searches the inventory. With no term on the command line the user is
// asked for one.
func (a *App) Find(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		var err error
		term, err = GetSimpleText(a.reader, "What are you looking for?", a.out)
		if err != nil {
			return a.fail(err)
		}
	}
	if term == "" {
		fmt.Fprintln(a.out, "Enter a keyword to search.")
		return nil
	}

	found, err := a.inventoryService.Search(ctx, a.session, term)
	if err != nil {
		return a.fail(err)
	}

	if len(found) == 0 {
		fmt.Fprintln(a.out, "No items found. Check the spelling or add it!")
		return nil
	}

	fmt.Fprintf(a.out, "Found %d items:\n", len(found))
	return printMatches(a.out, found)
}

// Add asks for name, drawer and notes and stores a new item.
func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Item name", a.out)
	if err != nil {
		return a.fail(err)
	}
	if name == "" {
		return a.fail(fmt.Errorf("%w: item name", common.ErrMissingRequiredField))
	}

	prompt := fmt.Sprintf("Drawer number (%d-%d)", common.DrawerMin, common.DrawerMax)
	drawer, err := GetInt(a.reader, prompt, a.out)
	if err != nil {
		return a.fail(fmt.Errorf("%w: %v", common.ErrInvalidDrawer, err))
	}
	if drawer < common.DrawerMin || drawer > common.DrawerMax {
		return a.fail(common.ErrInvalidDrawer)
	}

	notes, err := GetSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return a.fail(err)
	}

	item, err := a.inventoryService.Add(ctx, a.session, name, drawer, notes)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Saved %s to drawer %d\n", item.Name, item.Drawer)
	return nil
}

// List prints the whole inventory with positions usable by delete.
func (a *App) List(ctx context.Context) error {
	all, err := a.inventoryService.List(ctx, a.session)
	if err != nil {
		return a.fail(err)
	}

	if len(all) == 0 {
		fmt.Fprintln(a.out, "Inventory is empty.")
		return nil
	}

	matches := make([]search.Match, len(all))
	for i, item := range all {
		matches[i] = search.Match{Index: i, Item: item}
	}
	return printMatches(a.out, matches)
}

// Delete removes the item at the position given on the command line, or
// asks for one.
func (a *App) Delete(ctx context.Context, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		var err error
		arg, err = GetSimpleText(a.reader, "Position to delete", a.out)
		if err != nil {
			return a.fail(err)
		}
	}

	index, err := strconv.Atoi(arg)
	if err != nil {
		return a.fail(fmt.Errorf("%w: %q", common.ErrIndexOutOfRange, arg))
	}

	removed, err := a.inventoryService.Delete(ctx, a.session, index)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Deleted %s from drawer %d\n", removed.Name, removed.Drawer)
	return nil
}

func printMatches(w io.Writer, matches []search.Match) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tITEM\tDRAWER\tNOTES\tADDED BY\tADDED AT")
	for _, m := range matches {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
			m.Index, m.Item.Name, m.Item.Drawer, m.Item.Notes, m.Item.AddedBy, shortTime(m.Item))
	}
	return tw.Flush()
}

// shortTime trims the stored timestamp to seconds for display.
func shortTime(item models.Item) string {
	if n := len(common.DisplayTimestampLayout); len(item.Timestamp) > n {
		return item.Timestamp[:n]
	}
	return item.Timestamp
}
