package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// Supported subcommands:
// - register / login / logout: session management
// - products / product:        catalog browsing
// - cart:                      show, add, set, rm
// - addresses / address-add:   shipping profiles
// - checkout:                  price and submit the cart
// - orders / order:            own order history
// - admin-orders / admin-set-status: staff order management
// - listen:                    payment-return listener

func usage() {
	fmt.Fprintln(os.Stderr, `usage: storefront <command> [flags]

commands:
  register      create an account and log in
  login         log in with username and password
  logout        forget the local session
  products      list catalog products (paginated)
  product       show one product
  cart          show | add | set | rm
  addresses     list saved shipping addresses
  address-add   save a new shipping address
  checkout      price the cart and submit it for payment
  orders        list your orders
  order         show one of your orders
  admin-orders  list all orders (staff)
  admin-set-status  move an order to a new status (staff)
  listen        serve the payment-return endpoints`)
}

func (a *cliApp) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return a.cmdRegister(ctx, args)
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		return a.cmdLogout(ctx)
	case "products":
		return a.cmdProducts(ctx, args)
	case "product":
		return a.cmdProduct(ctx, args)
	case "cart":
		return a.cmdCart(ctx, args)
	case "addresses":
		return a.cmdAddresses(ctx)
	case "address-add":
		return a.cmdAddressAdd(ctx, args)
	case "checkout":
		return a.cmdCheckout(ctx, args)
	case "orders":
		return a.cmdOrders(ctx)
	case "order":
		return a.cmdOrder(ctx, args)
	case "admin-orders":
		return a.cmdAdminOrders(ctx)
	case "admin-set-status":
		return a.cmdAdminSetStatus(ctx, args)
	default:
		usage()

		return errors.Errorf("unknown command %q", command)
	}
}

// report prints a command failure according to its kind. Auth-expired
// errors are handled here and only here: local session state is dropped
// and the visitor is told to log in again.
func (a *cliApp) report(ctx context.Context, err error) {
	if domainerrors.IsAuthExpired(err) {
		if logoutErr := a.users.Logout(ctx); logoutErr != nil {
			a.logger.Warn("could not clear local session", "error", logoutErr)
		}
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintln(os.Stderr, "storefront:", appErr.Message())

		return
	}

	fmt.Fprintln(os.Stderr, "storefront:", err)
}

func (a *cliApp) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "Display name")
	username := fs.String("username", "", "Account username")
	password := fs.String("password", "", "Account password (min 6 characters)")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	out, err := a.users.Register(ctx, service.RegisterInput{
		Name:     *name,
		Username: *username,
		Password: *password,
	})
	if err != nil {
		return err
	}

	a.printAuthOutcome(out)

	return nil
}

func (a *cliApp) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "Account username")
	password := fs.String("password", "", "Account password")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	out, err := a.users.Login(ctx, usecase.LoginInput{
		Username: *username,
		Password: *password,
	})
	if err != nil {
		return err
	}

	a.printAuthOutcome(out)

	return nil
}

func (a *cliApp) printAuthOutcome(out *usecase.AuthOutput) {
	fmt.Printf("logged in as %s (%s)\n", out.Session.Username, out.Session.Role)
	switch {
	case out.MergeFailed:
		fmt.Println("warning: your guest cart could not be carried over; it will be retried on the next login")
	case out.GuestLinesMerged > 0:
		fmt.Printf("%d cart line(s) carried over from your guest cart\n", out.GuestLinesMerged)
	}
}

func (a *cliApp) cmdLogout(ctx context.Context) error {
	if err := a.users.Logout(ctx); err != nil {
		return err
	}

	fmt.Println("logged out")

	return nil
}

func (a *cliApp) cmdProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	page := fs.Int("page", 1, "Catalog page to list")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	result, err := a.catalog.Browse(ctx, *page)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
	for _, p := range result.Products {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", p.ID, p.Name, p.Price, p.Stock)
	}
	if err := w.Flush(); err != nil {
		return errors.WithStack(err)
	}
	if result.HasMore {
		fmt.Printf("more products on page %d\n", result.Page+1)
	}

	return nil
}

func (a *cliApp) cmdProduct(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("product", flag.ExitOnError)
	id := fs.Int64("id", 0, "Product ID")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	product, err := a.catalog.GetProduct(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (#%d)\n", product.Name, product.ID)
	fmt.Printf("price: %d\nstock: %d\n", product.Price, product.Stock)
	if product.Description != "" {
		fmt.Println(product.Description)
	}

	return nil
}

func (a *cliApp) cmdCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "show":
		return a.cmdCartShow(ctx)
	case "add":
		fs := flag.NewFlagSet("cart add", flag.ExitOnError)
		id := fs.Int64("id", 0, "Product ID")
		qty := fs.Int("qty", 1, "Quantity to add")
		if err := fs.Parse(rest); err != nil {
			return errors.WithStack(err)
		}
		cart, err := a.cart.Add(ctx, *id, *qty)
		if err != nil {
			return err
		}
		fmt.Printf("cart now holds %d item(s)\n", cart.TotalItems())

		return nil
	case "set":
		fs := flag.NewFlagSet("cart set", flag.ExitOnError)
		id := fs.Int64("id", 0, "Product ID")
		qty := fs.Int("qty", 0, "Exact quantity (0 removes the line)")
		if err := fs.Parse(rest); err != nil {
			return errors.WithStack(err)
		}
		cart, err := a.cart.SetQuantity(ctx, *id, *qty)
		if err != nil {
			return err
		}
		fmt.Printf("cart now holds %d item(s)\n", cart.TotalItems())

		return nil
	case "rm":
		fs := flag.NewFlagSet("cart rm", flag.ExitOnError)
		id := fs.Int64("id", 0, "Product ID")
		if err := fs.Parse(rest); err != nil {
			return errors.WithStack(err)
		}
		cart, err := a.cart.Remove(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("cart now holds %d item(s)\n", cart.TotalItems())

		return nil
	default:
		return errors.Errorf("unknown cart subcommand %q", sub)
	}
}

func (a *cliApp) cmdCartShow(ctx context.Context) error {
	items, err := a.cart.GetDetailed(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("cart is empty")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE\tLINE TOTAL")
	var subtotal int64
	for _, item := range items {
		name, price := "(no longer in catalog)", int64(0)
		if item.Product != nil {
			name, price = item.Product.Name, item.Product.Price
		}
		lineTotal := price * int64(item.Line.Quantity)
		subtotal += lineTotal
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n",
			item.Line.ProductID, name, item.Line.Quantity, price, lineTotal)
	}
	if err := w.Flush(); err != nil {
		return errors.WithStack(err)
	}
	fmt.Printf("subtotal: %d\n", subtotal)

	return nil
}

func (a *cliApp) cmdAddresses(ctx context.Context) error {
	addresses, err := a.checkout.ListAddresses(ctx)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		fmt.Println("no saved addresses")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tRECIPIENT\tPHONE\tSTREET")
	for _, addr := range addresses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			addr.ID, addr.Label, addr.RecipientName, addr.Phone, addr.Street)
	}

	return errors.WithStack(w.Flush())
}

func (a *cliApp) cmdAddressAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("address-add", flag.ExitOnError)
	label := fs.String("label", "", "Address label, e.g. Home")
	recipient := fs.String("recipient", "", "Recipient name")
	phone := fs.String("phone", "", "Recipient phone")
	street := fs.String("street", "", "Street address")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	addr, err := a.checkout.SaveAddress(ctx, usecase.AddressInput{
		Label:         *label,
		RecipientName: *recipient,
		Phone:         *phone,
		Street:        *street,
	})
	if err != nil {
		return err
	}

	fmt.Printf("saved address #%d (%s)\n", addr.ID, addr.Label)

	return nil
}

func (a *cliApp) cmdCheckout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	addressID := fs.Int64("address", 0, "Shipping address ID")
	method := fs.String("method", string(entity.PaymentVirtualAccount),
		"Payment method: virtual_account or qris")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	out, err := a.checkout.Submit(ctx, usecase.CheckoutInput{
		AddressID: *addressID,
		Method:    entity.PaymentMethod(*method),
	})
	if err != nil {
		return err
	}

	if out.Quote.Total > 0 {
		fmt.Printf("subtotal: %d\nadmin fee: %d\ntotal: %d\n",
			out.Quote.Subtotal, out.Quote.Fee, out.Quote.Total)
	}
	fmt.Printf("order number: %s\n", out.OrderNum)
	if out.PaymentURL != "" {
		fmt.Printf("pay at: %s\n", out.PaymentURL)
	}
	if len(out.QRCodePNG) > 0 {
		path := filepath.Join(a.cfg.State.Dir, "qris.png")
		if err := os.WriteFile(path, out.QRCodePNG, 0o600); err != nil {
			return errors.Wrap(err, "write qris png")
		}
		fmt.Printf("QRIS code written to %s\n", path)
	}

	return nil
}

func (a *cliApp) cmdOrders(ctx context.Context) error {
	orders, err := a.orders.ListMine(ctx)
	if err != nil {
		return err
	}

	return printOrders(orders)
}

func (a *cliApp) cmdOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order", flag.ExitOnError)
	id := fs.Int64("id", 0, "Order ID")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	order, err := a.orders.GetMine(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Printf("order %s (%s)\n", order.OrderNum, order.Status)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tQTY\tPRICE AT PURCHASE")
	for _, item := range order.Items {
		fmt.Fprintf(w, "%s\t%d\t%d\n", item.Product.Name, item.Quantity, item.PriceAtPurchase)
	}
	if err := w.Flush(); err != nil {
		return errors.WithStack(err)
	}
	fmt.Printf("total: %d\n", order.Total)
	if order.Address != nil {
		fmt.Printf("shipping to: %s, %s (%s)\n",
			order.Address.RecipientName, order.Address.Street, order.Address.Phone)
	}

	return nil
}

func (a *cliApp) cmdAdminOrders(ctx context.Context) error {
	orders, err := a.orders.ListAll(ctx)
	if err != nil {
		return err
	}

	return printOrders(orders)
}

func (a *cliApp) cmdAdminSetStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin-set-status", flag.ExitOnError)
	id := fs.Int64("id", 0, "Order ID")
	status := fs.String("status", "", "New status: pending, paid, shipped, delivered or canceled")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	order, err := a.orders.SetStatus(ctx, *id, entity.OrderStatus(*status))
	if err != nil {
		return err
	}

	fmt.Printf("order %s is now %s\n", order.OrderNum, order.Status)

	return nil
}

func printOrders(orders []*entity.Order) error {
	if len(orders) == 0 {
		fmt.Println("no orders")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORDER NUM\tCUSTOMER\tSTATUS\tTOTAL\tPLACED AT")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			o.ID, o.OrderNum, o.UserName, o.Status, o.Total,
			o.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return errors.WithStack(w.Flush())
}
