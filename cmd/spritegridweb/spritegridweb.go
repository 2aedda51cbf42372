package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/go-spritegrid/spritegrid"
	"badc0de.net/pkg/go-spritegrid/web"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	_ "golang.org/x/net/trace"
	"golang.org/x/sync/errgroup"
)

var (
	listenAddress  = flag.String("listen_address", ":8080", "http listen address for spritegridweb")
	debugWebServer = flag.String("debug_web_server_listen_address", "", "where the debug server (/debug/requests, /debug/events) will listen")
	strict         = flag.Bool("strict", false, "whether to refuse negative grid indices")

	cfg spritegrid.Config
)

// serve runs srv until ctx is done, then gives it a few seconds to drain.
func serve(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		glog.Infof("listening on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	spritegrid.SetupConfigFlags(flag.CommandLine, &cfg)
	flagutil.Parse()

	if err := cfg.Validate(); err != nil {
		glog.Fatalf("bad sheet layout: %v", err)
	}
	glog.Infof("serving sprite rects for %+v (strict: %t)", cfg, *strict)

	r := mux.NewRouter()
	web.NewHandler(cfg, *strict).RegisterRoutes(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return serve(ctx, &http.Server{Addr: *listenAddress, Handler: web.Wrap(r, os.Stderr)})
	})
	if *debugWebServer != "" {
		// x/net/trace registers its pages on the default mux.
		g.Go(func() error {
			return serve(ctx, &http.Server{Addr: *debugWebServer, Handler: http.DefaultServeMux})
		})
	}

	if err := g.Wait(); err != nil && err != http.ErrServerClosed {
		glog.Fatal(err)
	}
	glog.Infoln("spritegridweb stopped")
}
