package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"financebook/internal/categorytree"
	"financebook/internal/csvio"
	"financebook/internal/dialog"
	"financebook/internal/form"
	"financebook/internal/listview"
	"financebook/internal/models"
	"financebook/internal/render"
)

func (a *app) login(ctx context.Context, args []string) error {
	fs := a.flags("login")
	username := fs.String("username", "", "user name")
	password := fs.String("password", "", "password (prompted when empty)")
	remember := fs.Bool("remember", false, "keep the token on disk; needed for later commands")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	var err error
	if *username == "" {
		if *username, err = a.prompt("Username: "); err != nil {
			return err
		}
	}
	if *password == "" {
		if *password, err = a.prompt("Password: "); err != nil {
			return err
		}
	}

	user, err := a.session.Login(ctx, *username, *password, *remember)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s.\n", user.Username)
	if !*remember {
		fmt.Fprintln(a.out, "The token was not saved; log in with -remember to use other commands.")
	}
	return nil
}

func (a *app) logout(_ context.Context, args []string) error {
	if err := parseFlags(a.flags("logout"), args); err != nil {
		return err
	}
	if err := a.session.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *app) whoami(ctx context.Context, args []string) error {
	if err := parseFlags(a.flags("whoami"), args); err != nil {
		return err
	}
	user, err := a.session.Me(ctx)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(user.Prename + " " + user.Surname)
	if name == "" {
		fmt.Fprintln(a.out, user.Username)
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", user.Username, name)
	return nil
}

func (a *app) summary(ctx context.Context, args []string) error {
	fs := a.flags("summary")
	view := fs.String("filter", "", "expenses, incomes or fees")
	var categories idList
	fs.Var(&categories, "category", "category id; repeat to combine")
	sortOrder := fs.String("sort", string(listview.SortDesc), "asc or desc")
	page := fs.String("page", "", "1-based page number")
	size := fs.String("size", "", "page size or \"all\"")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := (summaryOptions{View: *view, Sort: *sortOrder}).validate(); err != nil {
		return err
	}

	// Flags travel through the same query encoding the list view persists.
	q := url.Values{listview.ParamFilter: {*view}, listview.ParamCategories: categories}
	st := listview.NewState(listview.DecodeFilterState(q), a.cfg.PageSize)
	st.SetSort(listview.SortOrder(*sortOrder))

	showAll := false
	if *size != "" {
		n, err := listview.ParsePageSize(*size)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		if n == 0 {
			showAll = true
		} else {
			st.SetPageSize(n)
		}
	}

	items, err := a.queries.PaymentItems(ctx, st.Filter.ServerFilter())
	if err != nil {
		return err
	}
	if showAll {
		st.ShowAll(len(listview.ApplyViewFilter(items, st.Filter.View)))
	}

	v := listview.Derive(items, st)
	if *page != "" {
		if err := st.JumpTo(*page, v.TotalPages); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		v = listview.Derive(items, st)
	}

	names, err := a.names(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.renderer.Summary(v, st, names))
	if enc := st.Filter.Encode().Encode(); enc != "" {
		fmt.Fprintf(a.out, "filter: ?%s\n", enc)
	}
	return nil
}

func (a *app) stats(ctx context.Context, args []string) error {
	if err := parseFlags(a.flags("stats"), args); err != nil {
		return err
	}
	items, err := a.queries.PaymentItems(ctx, models.PaymentItemFilter{})
	if err != nil {
		return err
	}
	names, err := a.names(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.renderer.Stats(listview.GroupByCategory(items, names.Categories), listview.BalanceTimeline(items)))
	return nil
}

func (a *app) categories(ctx context.Context, args []string) error {
	if err := parseFlags(a.flags("categories"), args); err != nil {
		return err
	}
	types, err := a.queries.CategoryTypes(ctx)
	if err != nil {
		return err
	}
	cats, err := a.queries.AllCategories(ctx)
	if err != nil {
		return err
	}
	if len(types) == 0 {
		fmt.Fprintln(a.out, "No categories yet.")
		return nil
	}
	fmt.Fprintln(a.out, a.renderer.Categories(types, cats))
	return nil
}

func (a *app) add(ctx context.Context, args []string) error {
	fs := a.flags("add")
	id := fs.String("id", "", "edit the payment item with this id")
	amount := fs.String("amount", "", "amount, always positive")
	expense := fs.Bool("expense", false, "record an expense instead of an income")
	description := fs.String("description", "", "description")
	periodic := fs.Bool("periodic", false, "recurring payment")
	fee := fs.String("fee", "", "transaction fee")
	recipient := fs.String("recipient", "", "recipient name; created when new")
	address := fs.String("address", "", "recipient address")
	category := fs.String("category", "", "standard category name; created when new")
	invoice := fs.String("invoice", "", "invoice file to attach")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	draft := form.NewDraft()
	if *id != "" {
		itemID, err := parseID(*id)
		if err != nil {
			return err
		}
		item, err := a.queries.PaymentItem(ctx, itemID)
		if err != nil {
			return err
		}
		draft = form.DraftFromItem(*item)
	}
	f := form.New(draft)

	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if set["amount"] {
		f.Draft.Amount = *amount
	}
	if set["expense"] || !f.Draft.IsEdit() {
		f.Draft.Positive = !*expense
	}
	if set["description"] {
		f.Draft.Description = *description
	}
	if set["periodic"] {
		f.Draft.Periodic = *periodic
	}
	if *fee != "" {
		v, err := decimal.NewFromString(*fee)
		if err != nil {
			return fmt.Errorf("%w: invalid fee %q", errUsage, *fee)
		}
		f.Draft.Fee = &v
	}

	if *recipient != "" {
		if err := a.applyRecipient(ctx, f, *recipient, *address); err != nil {
			return err
		}
	}
	if *category != "" {
		if err := a.applyCategory(ctx, f, *category); err != nil {
			return err
		}
	}
	if *invoice != "" {
		data, err := os.ReadFile(*invoice)
		if err != nil {
			return fmt.Errorf("reading invoice: %w", err)
		}
		if err := f.Stage(filepath.Base(*invoice), data); err != nil {
			return err
		}
	}

	out := f.Submit(ctx, form.NewSaga(a.queries), a.progress())
	switch out.Status {
	case form.StatusSucceeded:
		verb := "Created"
		if out.Route == form.RouteSummary {
			verb = "Updated"
		}
		fmt.Fprintf(a.out, "%s payment item #%d (%s).\n", verb, out.Item.ID, listview.FormatEUR(out.Item.Amount))
		return nil
	case form.StatusPartial:
		fmt.Fprintln(a.out, out.Message)
		return fmt.Errorf("payment item #%d: %w", out.Item.ID, errPartial)
	case form.StatusInvalid:
		return a.formError(f, out.Err)
	}
	return fmt.Errorf("%s: %w", out.Message, out.Err)
}

// applyRecipient runs the recipient sub-protocol for the typed name.
func (a *app) applyRecipient(ctx context.Context, f *form.Form, name, address string) error {
	recipients, err := a.queries.Recipients(ctx)
	if err != nil {
		return err
	}
	// A typed name selects a recipient by name rather than renaming the
	// current one.
	f.Draft.RecipientID = nil
	f.RecipientName, f.RecipientAddress = name, address
	if err := f.AddRecipient(ctx, a.queries, recipients); err != nil {
		return a.formError(f, err)
	}
	if f.Error != "" {
		fmt.Fprintln(a.out, f.Error)
	}
	return nil
}

// applyCategory selects or creates a category of the standard type. The
// standard type is created first for a user without any types.
func (a *app) applyCategory(ctx context.Context, f *form.Form, name string) error {
	types, err := a.queries.CategoryTypes(ctx)
	if err != nil {
		return err
	}
	if _, ok := categorytree.StandardType(types); !ok {
		created, err := a.queries.CreateCategoryType(ctx, models.CategoryTypeInput{Name: models.StandardCategoryTypeName})
		if err != nil {
			return err
		}
		types = append(types, *created)
	}
	cats, err := a.queries.AllCategories(ctx)
	if err != nil {
		return err
	}
	typeID, picker, _ := form.PickerCategories(types, cats)

	f.NewCategoryName = name
	if err := f.AddCategory(ctx, a.queries, picker, typeID); err != nil {
		return a.formError(f, err)
	}
	return nil
}

// formError shows the invalid-character notice when it was opened and
// returns err.
func (a *app) formError(f *form.Form, err error) error {
	if d := f.SemicolonDialog(); d.IsOpen() {
		fmt.Fprintln(a.out, a.renderer.Dialog(d))
		d.Close()
	}
	return err
}

func (a *app) progress() form.ProgressFunc {
	last := -1
	return func(percent int) {
		if percent != last {
			last = percent
			fmt.Fprintf(a.out, "Uploading invoice... %d%%\n", percent)
		}
	}
}

func (a *app) delete(ctx context.Context, args []string) error {
	fs := a.flags("delete")
	id := fs.String("id", "", "payment item id")
	yes := fs.Bool("yes", false, "skip the confirmation")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	itemID, err := parseID(*id)
	if err != nil {
		return err
	}

	var (
		d         *dialog.Dialog
		deleted   bool
		deleteErr error
	)
	d = dialog.DeletePayment(func() {
		d.SetLoading(true)
		deleteErr = a.queries.DeletePaymentItem(ctx, itemID)
		d.SetLoading(false)
		deleted = deleteErr == nil
		d.Close()
	}, func() { d.Close() })
	d.Open()

	if *yes {
		d.Click(dialog.ButtonConfirm)
	} else {
		fmt.Fprintln(a.out, a.renderer.Dialog(d))
		answer, err := a.prompt("Type \"delete\" to confirm: ")
		if err != nil {
			return err
		}
		if strings.EqualFold(answer, "delete") || strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
			d.HandleKey(dialog.KeyEnter)
		} else {
			d.HandleKey(dialog.KeyEscape)
		}
	}

	switch {
	case deleteErr != nil:
		return deleteErr
	case deleted:
		fmt.Fprintf(a.out, "Deleted payment item #%d.\n", itemID)
	default:
		fmt.Fprintln(a.out, "Cancelled.")
	}
	return nil
}

func (a *app) export(ctx context.Context, args []string) error {
	fs := a.flags("export")
	path := fs.String("out", "", "output file (default payment_items_<date>.csv)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *path == "" {
		*path = csvio.Filename(a.now())
	}

	items, err := a.queries.PaymentItems(ctx, models.PaymentItemFilter{})
	if err != nil {
		return err
	}

	file, err := os.Create(*path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", *path, err)
	}
	if err := csvio.NewExporter(a.queries).Export(ctx, file, items); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing %s: %w", *path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", *path, err)
	}
	fmt.Fprintf(a.out, "Exported %d payment items to %s.\n", len(items), *path)
	return nil
}

func (a *app) importCSV(ctx context.Context, args []string) error {
	fs := a.flags("import")
	path := fs.String("file", "", "CSV file to import")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("%w: -file is required", errUsage)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *path, err)
	}
	result, err := a.queries.ImportCSV(ctx, filepath.Base(*path), data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Imported %d payment items: %d new recipients, %d updated recipients, %d new categories.\n",
		result.CreatedPayments, result.CreatedRecipients, result.UpdatedRecipients, result.CreatedCategories)
	return nil
}

// names builds the id-to-name maps used by listings.
func (a *app) names(ctx context.Context) (render.Names, error) {
	cats, err := a.queries.AllCategories(ctx)
	if err != nil {
		return render.Names{}, err
	}
	recipients, err := a.queries.Recipients(ctx)
	if err != nil {
		return render.Names{}, err
	}
	byID := make(map[uint]string, len(recipients))
	for _, r := range recipients {
		byID[r.ID] = r.Name
	}
	return render.Names{Categories: categorytree.New(cats).NameMap(), Recipients: byID}, nil
}
