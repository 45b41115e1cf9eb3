package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/priyankmodi/storefront/app/controllers"
	"github.com/priyankmodi/storefront/app/routes"
	"github.com/priyankmodi/storefront/internal/server"
	"github.com/priyankmodi/storefront/pkg/auth"
	"github.com/priyankmodi/storefront/pkg/router"
)

// storefront serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// storefront route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered API routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Handlers are never invoked; the table only needs the shape.
		r := router.New()
		routes.RegisterAPI(r, routes.Deps{
			Issuer:   auth.NewIssuer(""),
			Auth:     controllers.NewAuthController(nil),
			Products: controllers.NewProductController(nil),
			Orders:   controllers.NewOrderController(nil),
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range r.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
