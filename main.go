package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/glitchtx/api"
	"github.com/matt-g-everett/glitchtx/glitch"
	"github.com/matt-g-everett/glitchtx/stream"
	"github.com/matt-g-everett/glitchtx/util"
	"github.com/pkg/errors"
)

type app struct {
	Config    stream.Config
	Random    util.Random
	Generator *glitch.Generator
	Stdout    io.Writer
}

func newApp() *app {
	a := new(app)
	a.Config = stream.DefaultConfig()
	a.Stdout = os.Stdout
	return a
}

func (a *app) readConfig(configPath string) error {
	f, err := os.Open(configPath)
	if os.IsNotExist(err) {
		log.Printf("No config at %s, using defaults", configPath)
		return nil
	} else if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer f.Close()

	a.Config, err = stream.ReadConfig(f)
	return err
}

func (a *app) writeSources(dir string) error {
	doc := a.Generator.Document(a.Config.Height)
	if dir == "" {
		_, err := io.WriteString(a.Stdout, doc.HTML()+"\n\n"+doc.CSS()+"\n")
		return errors.Wrap(err, "write sources")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := os.WriteFile(filepath.Join(dir, "glitch.html"), []byte(doc.HTML()+"\n"), 0644); err != nil {
		return errors.Wrap(err, "write markup")
	}
	if err := os.WriteFile(filepath.Join(dir, "glitch.css"), []byte(doc.CSS()+"\n"), 0644); err != nil {
		return errors.Wrap(err, "write stylesheet")
	}
	log.Printf("Wrote %d strips to %s", len(doc.Strips), dir)
	return nil
}

func (a *app) runStream(ctx context.Context) error {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	client := mqtt.NewClient(options)

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return errors.Wrap(token.Error(), "connect to broker")
	}
	defer client.Disconnect(250)
	log.Println("Connected")

	doc := a.Generator.Document(a.Config.Height)
	nowMs := time.Now().UnixNano() / int64(time.Millisecond)
	animation := stream.NewGlitchStrip(doc, stream.Rainbow,
		a.Config.Led.Saturation, a.Config.Led.Luminance, nowMs)
	streamer := stream.NewStreamer(a.Config, client, animation)

	if err := streamer.PublishSources(doc); err != nil {
		return err
	}
	return streamer.Run(ctx)
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	height := flag.Int("height", 0, "Height of the glitched element in em, overrides the config.")
	seed := flag.Int64("seed", 0, "Random seed, 0 picks one.")
	outDir := flag.String("out", "", "Directory for glitch.html and glitch.css, stdout when empty.")
	serve := flag.Bool("serve", false, "Serve a live preview.")
	streamLeds := flag.Bool("stream", false, "Stream the effect to an led strip over MQTT.")
	flag.Parse()

	a := newApp()
	if err := a.readConfig(*configPath); err != nil {
		log.Fatal(err)
	}
	if *height != 0 {
		a.Config.Height = *height
	}

	if *seed == 0 {
		s, err := util.NewSeed()
		if err != nil {
			log.Fatal(err)
		}
		*seed = s
	}
	log.Printf("Seed: %d", *seed)
	a.Random = util.NewRandom(*seed)

	g, err := glitch.NewGenerator(a.Config.Glitch, a.Random)
	if err != nil {
		log.Fatal(err)
	}
	a.Generator = g

	switch {
	case *serve:
		err = api.NewApi(g, a.Config.Height, a.Config.Server.Address).Serve()
	case *streamLeds:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = a.runStream(ctx)
	default:
		err = a.writeSources(*outDir)
	}
	if err != nil {
		log.Fatal(err)
	}
}
