package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/ledtimeline/api"
	"github.com/matt-g-everett/ledtimeline/registry"
	"github.com/matt-g-everett/ledtimeline/stream"
	"github.com/matt-g-everett/ledtimeline/timeline"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Registry   *registry.Registry
	Controller *stream.Controller
	Streamer   *stream.Streamer
}

func newApp() *app {
	a := new(app)
	a.Registry = registry.New(timeline.New())
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Streamer.Subscribe(); err != nil {
		log.Printf("Subscribe failed: %v", err)
	}
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	a.Streamer.Run()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	a.Config, err = stream.ReadConfig(f)
	if err != nil {
		panic(err)
	}
}

// build loads the keyframe sheet and wires the strip, controller and
// streamer around it.
func (a *app) build() {
	var streamer *stream.Streamer
	notify := func(event string, t timeline.Target, k timeline.Keyframe) {
		streamer.Notify(event, t, k)
	}

	channels, err := a.Config.Channels.Build(a.Registry, notify)
	if err != nil {
		panic(err)
	}
	for _, group := range a.Registry.Groups() {
		log.Printf("Group %s: %d channels", group, len(a.Registry.Group(group)))
	}

	strip := stream.NewStrip(a.Config.Gradient, a.Config.Pixels, a.Config.TrailLength, channels)
	a.Controller = stream.NewController(a.Registry.Timeline(), strip)
	if a.Config.Loop != nil {
		a.Controller.SetLoop(*a.Config.Loop)
	}

	streamer = stream.NewStreamer(a.Config, a.Client, a.Controller)
	a.Streamer = streamer
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	pagesPath := flag.String("pages", "client/dist", "Directory of static pages to serve.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: broker %s, %d pixels at %v fps, %d channels",
		a.Config.Mqtt.URL, a.Config.Pixels, a.Config.FrameRate, len(a.Config.Channels))

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
	a.build()

	server := api.NewApi(a.Controller, a.Config.Listen, *pagesPath)
	go func() {
		if err := server.Serve(); err != nil {
			log.Printf("Api stopped: %v", err)
		}
	}()

	a.run()
}
