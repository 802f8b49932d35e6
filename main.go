/*
citytraffic simulates discrete-time road traffic on a directed,
four-orientation grid graph. Vehicles spawn at sources, drive greedily
toward destinations using precomputed shortest-path costs with bounded
lookahead to route around contention, respect traffic-light phases, and
despawn on arrival. A browser-based renderer displays successive traffic
snapshots in real time while the simulator steps forward independently.
*/
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/niceyeti/citytraffic/city"
	"github.com/niceyeti/citytraffic/config"
	"github.com/niceyeti/citytraffic/driver"
	"github.com/niceyeti/citytraffic/mapfile"
	"github.com/niceyeti/citytraffic/render"
	"github.com/niceyeti/citytraffic/sim"
	"github.com/niceyeti/citytraffic/version"
)

func loadCity(path string) (*city.City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loadCity: %w", err)
	}
	defer f.Close()

	c, err := mapfile.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loadCity: %w", err)
	}
	return c, nil
}

func loadConfig(flags *config.Flags) (*config.Config, error) {
	if flags.Config == "" {
		cfg := config.Defaults()
		cfg.ApplyFlags(flags)
		return cfg, nil
	}
	cfg, err := config.FromYaml(flags.Config)
	if err != nil {
		return nil, err
	}
	cfg.ApplyFlags(flags)
	return cfg, nil
}

// buildPipeline assembles the fixed per-tick step order: traffic lights,
// spawn, update (free/drive/occupy), despawn, pace. See spec section 4.4
// for the rationale behind this ordering. The traffic-light controller is
// constructed here, against state.Occupancy, because its initial lock
// pattern must apply to the exact grid the pipeline will run over.
func buildPipeline(env *sim.Env, cfg *config.Config, state sim.State) []sim.Step {
	timer := sim.NewAlternatingCounterTimer(cfg.OddCycleSteps, cfg.EvenCycleSteps, len(env.City.Lights))
	lights := sim.NewTrafficLightController(env.City.Lights, timer, state.Occupancy)

	return []sim.Step{
		lights.Step,
		sim.NewSpawnVehicles(env, cfg.SpawnFrequency),
		sim.NewUpdateVehicles(env, sim.DefaultVehicleUpdates),
		sim.NewRemoveVehicles(),
		sim.NewDelay(time.Duration(cfg.StepMillis) * time.Millisecond),
	}
}

func runApp() error {
	flags, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	c, err := loadCity(flags.File)
	if err != nil {
		return err
	}

	env, err := sim.NewEnv(c, driver.New(cfg.Lookahead))
	if err != nil {
		return err
	}

	state := sim.NewState(env, rand.New(rand.NewSource(time.Now().UnixNano())))
	steps := buildPipeline(env, cfg, state)

	pub := version.NewPublisher[sim.Traffic]()
	simulator := sim.NewSimulator(steps, state, pub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go simulator.Run()
	simulator.Start()

	addr := fmt.Sprintf(":%d", 8080)
	srv := render.NewServer(addr, c, pub.NewLocal(), cfg.GridSize)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		simulator.Shutdown()
		cancel()
	}()

	fmt.Printf("citytraffic: serving %dx%d city on %s\n", c.Width, c.Height, addr)
	return srv.Serve(ctx)
}

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
