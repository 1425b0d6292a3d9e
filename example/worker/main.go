//go:build unix

package main

import (
	"ipc-toolkit/example/shared"
	"ipc-toolkit/ipc"
	"ipc-toolkit/payload"
	"ipc-toolkit/wire"
	"os"

	"github.com/sirupsen/logrus"
)

var log = &logrus.Logger{
	Out:   os.Stdout,
	Level: logrus.DebugLevel,
	Formatter: &logrus.TextFormatter{
		FullTimestamp: true,
	},
}

func main() {
	if err := start(); err != nil {
		log.Fatal(err)
	}
}

func start() error {
	// Attach to the channel end the controller handed us
	conn, err := shared.FDConn(shared.ChannelFD)
	if err != nil {
		return err
	}
	defer conn.Close()

	w := ipc.New(conn, ipc.DefaultConfig())
	if err := w.Setup(); err != nil {
		return err
	}

	var settings shared.WorkerSettings
	var modules []string

	w.Handle(wire.TypeRequireModule, func(p []byte) {
		m, err := payload.DecodeRequireModule(p)
		if err != nil {
			log.Errorf("Bad require payload: %v", err)
			return
		}
		log.Infof("Loading module: %s", m.Name)
		modules = append(modules, m.Name)
	})
	w.Handle(wire.TypeModuleMsg, func(p []byte) {
		m, err := payload.DecodeModuleMsg(p)
		if err != nil {
			log.Errorf("Bad module message: %v", err)
			return
		}
		if err := m.Value(&settings); err != nil {
			log.Errorf("Bad module argument: %v", err)
			return
		}
		log.Infof("Module %d settings: %+v", m.Module, settings)
	})
	w.Handle(wire.TypeConfigLoaded, func([]byte) {
		log.Info("Controller finished loading config")
	})

	// Wait for the config-loaded marker first. Everything arriving ahead
	// of it is deferred, not dropped.
	if err := w.DispatchWait(wire.MaskOf(wire.TypeConfigLoaded)); err != nil {
		return err
	}
	log.Infof("Draining %d deferred frames", w.Pending())
	for w.Pending() > 0 {
		if _, err := w.Dispatch(wire.MaskAny); err != nil {
			return err
		}
	}
	log.Infof("Modules loaded: %v", modules)

	// Report back as if the page were scrolling
	reports := settings.ScrollReports
	if reports <= 0 {
		reports = 1
	}
	states := []payload.Scroll{
		{V: 0, PageID: settings.PageID, Kind: payload.ScrollDocResize},
	}
	for i := 1; i <= reports; i++ {
		states = append(states, payload.Scroll{
			V:      int32(i * 120),
			PageID: settings.PageID,
			Kind:   payload.ScrollMove,
		})
	}
	for _, s := range states {
		log.Infof("Reporting scroll: %s v=%d", s.Kind, s.V)
		if err := w.Send(wire.TypeScroll, s.Encode()); err != nil {
			return err
		}
	}

	return nil
}
