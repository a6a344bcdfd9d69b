// Package cli — терминальный интерфейс клиента: команды поверх
// session/layers/markers stores.
package cli

import (
	"fmt"

	"github.com/iudanet/mapkeeper/internal/client/iocli"
	"github.com/iudanet/mapkeeper/internal/client/layers"
	"github.com/iudanet/mapkeeper/internal/client/markers"
	"github.com/iudanet/mapkeeper/internal/client/session"
)

type Cli struct {
	io      iocli.IO
	session *session.Store
	layers  *layers.Store
	markers *markers.Store
}

func New(io iocli.IO, sessionStore *session.Store, layerStore *layers.Store, markerStore *markers.Store) *Cli {
	return &Cli{
		io:      io,
		session: sessionStore,
		layers:  layerStore,
		markers: markerStore,
	}
}

func PrintUsage() {
	fmt.Println("MapKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mapkeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --server URL   Server URL (default: http://localhost:5000/api)")
	fmt.Println("  --db PATH      Path to local session cache (default: mapkeeper-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                 Register new user")
	fmt.Println("  login                    Login to server")
	fmt.Println("  logout                   Logout and clear local session")
	fmt.Println("  status                   Show authentication status")
	fmt.Println("  profile                  Update profile (name, avatar)")
	fmt.Println("  layers [page]            List layers")
	fmt.Println("  layer <id>               Show one layer with its field schema")
	fmt.Println("  layer-create             Create a layer interactively")
	fmt.Println("  layer-delete <id>        Delete a layer")
	fmt.Println("  markers [layer-id]...    List markers (of given layers, or all)")
	fmt.Println("  marker-add <layer-id>    Add a marker to a layer")
	fmt.Println("  marker-edit <id>         Edit a marker")
	fmt.Println("  marker-delete <id>       Delete a marker")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  mapkeeper register")
	fmt.Println("  mapkeeper login")
	fmt.Println("  mapkeeper layers")
	fmt.Println("  mapkeeper markers 66b2f5c02d884aa1a9e113aa")
	fmt.Println("  mapkeeper --server https://example.com/api layers")
}
