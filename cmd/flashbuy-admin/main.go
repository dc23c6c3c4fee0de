// Command flashbuy-admin is a terminal client for the flash-buy admin
// API: sign in with an e-mail OTP, resolve the account's store and page
// through its catalog resources.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/g-villarinho/flash-buy-admin/internal/catalog"
	"github.com/g-villarinho/flash-buy-admin/internal/config"
	"github.com/g-villarinho/flash-buy-admin/internal/forms"
	"github.com/g-villarinho/flash-buy-admin/internal/querycache"
	"github.com/g-villarinho/flash-buy-admin/internal/screens"
	"github.com/g-villarinho/flash-buy-admin/internal/session"
	"github.com/g-villarinho/flash-buy-admin/internal/transport"
)

func main() {
	var (
		email    = flag.String("email", "", "Sign in with this e-mail (prompts for the OTP code)")
		name     = flag.String("name", "", "Register a new account with this name before signing in")
		resource = flag.String("resource", "billboards", "Resource to list: billboards|categories|sizes|colors|products")
		page     = flag.Int("page", 1, "Page to show")
		filter   = flag.String("filter", "", "Filter value for the resource's search field")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("parse log level %q: %v", cfg.LogLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	api, err := transport.New(transport.Config{
		BaseURL:           cfg.APIBaseURL,
		Timeout:           cfg.HTTPTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Logger:            logger,
	})
	if err != nil {
		log.Fatalf("create API client: %v", err)
	}

	client := catalog.New(api)
	cache := querycache.New(querycache.Config{
		Logger: logger,
		OnConnectivityLost: func() {
			fmt.Fprintln(os.Stderr, "Sem conexão com o servidor. Verifique sua rede e tente novamente.")
		},
	})
	sess := session.New(client, cache, logger)
	submit := forms.NewHandler(client, cache, logger)

	ctx := context.Background()

	if *email != "" {
		if err := signIn(ctx, submit, client, *name, *email); err != nil {
			log.Fatalf("sign in: %v", err)
		}
	}

	nav, err := sess.Bootstrap(ctx)
	if err != nil {
		log.Fatalf("resolve store: %v", err)
	}
	if nav == session.LoginNav() {
		log.Fatal("session expired, sign in again with -email")
	}
	if nav.None() {
		log.Fatal("this account has no store yet; create one in the web dashboard")
	}

	storeID, err := uuid.Parse(strings.TrimPrefix(nav.Path, "/"))
	if err != nil {
		log.Fatalf("parse store id from %q: %v", nav.Path, err)
	}

	if err := list(ctx, client, cache, storeID, *resource, *page, *filter); err != nil {
		if loginNav, handled := sess.HandleAPIError(err); handled {
			log.Fatalf("session expired, sign in again with -email (redirect %s)", loginNav.Path)
		}
		log.Fatalf("list %s: %v", *resource, err)
	}
}

// signIn registers when a name is given, then runs the e-mail OTP flow.
// An empty line at the code prompt asks for a fresh code.
func signIn(ctx context.Context, submit *forms.Handler, client *catalog.Client, name, email string) error {
	if name != "" {
		if out := submit.Register(ctx, forms.RegisterForm{Name: name, Email: email}); !out.Saved {
			return fmt.Errorf("register rejected: %v%s", out.Fields, out.Notice)
		}
	} else {
		if out := submit.Login(ctx, forms.LoginForm{Email: email}); !out.Saved {
			return fmt.Errorf("login rejected: %v%s", out.Fields, out.Notice)
		}
	}

	// guard against landing on the prompt without a pending code
	if err := client.CheckCode(ctx); err != nil {
		return fmt.Errorf("no pending verification code: %w", err)
	}

	fmt.Printf("Enviamos um código para %s. Digite-o aqui: ", email)
	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read code: %w", err)
		}
		code := strings.TrimSpace(line)
		if code == "" {
			if err := client.ResendCode(ctx); err != nil {
				return fmt.Errorf("resend code: %w", err)
			}
			fmt.Printf("Reenviamos o código para %s. Digite-o aqui: ", email)
			continue
		}
		out := submit.VerifyCode(ctx, forms.VerifyCodeForm{Code: code})
		if out.Saved {
			return nil
		}
		if msg, ok := out.Fields["code"]; ok {
			fmt.Printf("%s Tente novamente: ", msg)
			continue
		}
		return fmt.Errorf("verify code: %s", out.Notice)
	}
}

func list(ctx context.Context, client *catalog.Client, cache *querycache.Cache,
	storeID uuid.UUID, resource string, pageNum int, filter string) error {

	state := screens.ListState{Page: pageNum}

	switch resource {
	case "billboards":
		state = withFilter(screens.Billboards, state, filter)
		page, err := screens.Load(ctx, cache, screens.Billboards, state,
			func(ctx context.Context, s screens.ListState) (catalog.PagedResult[catalog.Billboard], error) {
				return client.ListBillboards(ctx, storeID, catalog.ListBillboardsParams{
					PageParams: catalog.PageParams{Page: s.Page},
					Label:      s.Filters["label"],
				})
			})
		if err != nil {
			return err
		}
		fmt.Println(screens.Heading("Painéis", page.Total))
		for _, b := range page.Rows {
			fmt.Printf("  %s  %s\n", b.ID, b.Label)
		}
	case "categories":
		state = withFilter(screens.Categories, state, filter)
		page, err := screens.Load(ctx, cache, screens.Categories, state,
			func(ctx context.Context, s screens.ListState) (catalog.PagedResult[catalog.Category], error) {
				return client.ListCategories(ctx, storeID, catalog.ListCategoriesParams{
					PageParams:  catalog.PageParams{Page: s.Page},
					Name:        s.Filters["name"],
					BillboardID: s.Filters["billboardId"],
				})
			})
		if err != nil {
			return err
		}
		fmt.Println(screens.Heading("Categorias", page.Total))
		for _, c := range page.Rows {
			fmt.Printf("  %s  %s (painel: %s)\n", c.ID, c.Name, c.Billboard.Label)
		}
	case "sizes":
		state = withFilter(screens.Sizes, state, filter)
		page, err := screens.Load(ctx, cache, screens.Sizes, state,
			func(ctx context.Context, s screens.ListState) (catalog.PagedResult[catalog.Size], error) {
				return client.ListSizes(ctx, storeID, catalog.ListSizesParams{
					PageParams: catalog.PageParams{Page: s.Page},
					Name:       s.Filters["name"],
				})
			})
		if err != nil {
			return err
		}
		fmt.Println(screens.Heading("Tamanhos", page.Total))
		for _, s := range page.Rows {
			fmt.Printf("  %s  %s (%s)\n", s.ID, s.Name, s.Value)
		}
	case "colors":
		state = withFilter(screens.Colors, state, filter)
		page, err := screens.Load(ctx, cache, screens.Colors, state,
			func(ctx context.Context, s screens.ListState) (catalog.PagedResult[catalog.Color], error) {
				return client.ListColors(ctx, storeID, catalog.ListColorsParams{
					PageParams: catalog.PageParams{Page: s.Page},
					Name:       s.Filters["name"],
				})
			})
		if err != nil {
			return err
		}
		fmt.Println(screens.Heading("Cores", page.Total))
		for _, c := range page.Rows {
			fmt.Printf("  %s  %s %s\n", c.ID, c.Name, c.Hex)
		}
	case "products":
		state = withFilter(screens.Products, state, filter)
		page, err := screens.Load(ctx, cache, screens.Products, state,
			func(ctx context.Context, s screens.ListState) (catalog.PagedResult[catalog.Product], error) {
				return client.ListProducts(ctx, storeID, catalog.ListProductsParams{
					PageParams: catalog.PageParams{Page: s.Page},
					Name:       s.Filters["name"],
				})
			})
		if err != nil {
			return err
		}
		fmt.Println(screens.Heading("Produtos", page.Total))
		for _, p := range page.Rows {
			fmt.Printf("  %s  %s  R$ %s\n", p.ID, p.Name, forms.FormatPrice(p.PriceInCents))
		}
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
	return nil
}

// withFilter applies the given value to the screen's search field.
func withFilter(d screens.Descriptor, state screens.ListState, value string) screens.ListState {
	if value == "" {
		return state
	}
	keep := state.Page
	state = state.WithFilters(map[string]string{d.FilterKeys[0]: value})
	return state.WithPage(keep)
}
