//go:build unix

package main

import (
	"errors"
	"io"
	"ipc-toolkit/example/shared"
	"ipc-toolkit/ipc"
	"ipc-toolkit/payload"
	"ipc-toolkit/wire"
	"os"
	"os/exec"

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
	path := "config.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := shared.LoadConfig(path)
	if err != nil {
		return err
	}
	log = shared.NewLogger(cfg.LogLevel)

	// Create the channel and spawn the worker on the far end
	conn, workerEnd, err := shared.SocketPair()
	if err != nil {
		return err
	}
	defer conn.Close()

	cmd := exec.Command(cfg.WorkerPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.ExtraFiles = []*os.File{workerEnd}
	if err := cmd.Start(); err != nil {
		return err
	}
	// The worker holds its own copy now; ours has to go or its close
	// will never reach us as EOF.
	workerEnd.Close()

	endpointCfg := ipc.DefaultConfig()
	endpointCfg.MaxPayloadSize = cfg.MaxPayloadSize
	ctrl := ipc.New(conn, endpointCfg)
	if err := ctrl.Setup(); err != nil {
		return err
	}

	ctrl.Handle(wire.TypeScroll, func(p []byte) {
		s, err := payload.DecodeScroll(p)
		if err != nil {
			log.Errorf("Bad scroll payload: %v", err)
			return
		}
		log.Infof("Scroll from page %d: %s h=%d v=%d", s.PageID, s.Kind, s.H, s.V)
	})

	// Module frames go out ahead of the config-loaded marker; the worker
	// defers them until it has seen the marker.
	for _, name := range cfg.Modules {
		log.Infof("Requiring module: %s", name)
		req := payload.RequireModule{Name: name}
		if err := ctrl.Send(wire.TypeRequireModule, req.Encode()); err != nil {
			return err
		}
	}
	settings, err := payload.NewModuleMsg(0, shared.WorkerSettings{
		ScrollReports: cfg.ScrollReports,
		PageID:        1,
	})
	if err != nil {
		return err
	}
	if err := ctrl.Send(wire.TypeModuleMsg, settings.Encode()); err != nil {
		return err
	}
	if err := ctrl.Send(wire.TypeConfigLoaded, nil); err != nil {
		return err
	}

	// Pull scroll reports until the worker is done and closes its end
	for {
		if err := ctrl.DispatchWait(wire.MaskOf(wire.TypeScroll)); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
	}
	log.Info("Worker channel closed")

	return cmd.Wait()
}
