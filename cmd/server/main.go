package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"net"
	"os"

	"flightsim/internal/config"
	"flightsim/internal/game"
	"flightsim/internal/server"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := config.MustParse(nil)

	// Generate host key if it doesn't exist
	if err := ensureHostKey(cfg.HostKey); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	world, err := cfg.World()
	if err != nil {
		log.Fatalf("Texture error: %v", err)
	}
	g, c := world.Ground.Histogram(), world.Cloud.Histogram()
	log.Printf("Ground texture %dx%d levels %v", world.Ground.Size, world.Ground.Size, g)
	log.Printf("Cloud texture %dx%d levels %v", world.Cloud.Size, world.Cloud.Size, c)

	gameLoop := game.NewGameLoop(world)
	gameLoop.SetTickRate(cfg.TPS)

	// Start game loop in background
	go gameLoop.Run()
	defer gameLoop.Stop()

	// Start SSH server (blocks)
	_, port, _ := net.SplitHostPort(cfg.Addr)
	sshServer := server.NewSSHServer(cfg.Addr, cfg.HostKey, gameLoop, cfg.Renderer)
	log.Printf("Starting flightsim (%s renderer, %d tps), connect with: ssh -t -p %s YourName@localhost",
		cfg.Renderer, cfg.TPS, port)
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
