package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"ec2-latent-worker/collection"
	"ec2-latent-worker/config"
	"ec2-latent-worker/controller"
	"ec2-latent-worker/driverset"
	"ec2-latent-worker/manifest"
)

func usage(message string) {
	fmt.Fprintln(os.Stderr, message)                              //nolint:errcheck
	fmt.Fprintln(os.Stderr, "Usage of ec2-latent-worker/main.go") //nolint:errcheck
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	sharedWriter := &logWriter{
		writer: os.Stderr,
	}

	logger := log.New(sharedWriter, "", log.LstdFlags)

	configPath := flag.String("c", "", "Path to the JSON configuration file")
	manifestPath := flag.String("manifest", "", "Path to the pool manifest YAML")

	flag.Parse()

	if *configPath == "" {
		usage("-c flag is required")
	}
	if *manifestPath == "" {
		usage("--manifest flag is required")
	}

	configFile, err := os.Open(*configPath)
	if err != nil {
		logger.Fatalf("Error opening config file: %s", err)
	}

	defer func() {
		closeErr := configFile.Close()
		if closeErr != nil {
			logger.Fatalf("Error closing config file: %s", closeErr)
		}
	}()

	c, err := config.NewFromReader(configFile)
	if err != nil {
		logger.Fatalf("Error parsing config file: %s. Message: %s", *configPath, err)
	}

	manifestFile, err := os.Open(*manifestPath)
	if err != nil {
		logger.Fatalf("Error opening manifest file: %s", err)
	}

	m, err := manifest.NewFromReader(manifestFile)
	manifestFile.Close() //nolint:errcheck
	if err != nil {
		logger.Fatalf("Error reading manifest: %s", err)
	}

	// manifest-level tags apply when the config declares none
	if c.Worker.Tags == nil {
		c.Worker.Tags = m.Tags
	}

	instanceCollection := collection.Instance{}
	errCollection := collection.Error{}

	var wg sync.WaitGroup
	wg.Add(len(m.Workers))

	for i := range m.Workers {
		go func(workerName string) {
			defer wg.Done()

			workerConfig := c
			workerConfig.Worker.Name = workerName

			ds := driverset.NewWorkerDriverSet(sharedWriter, workerConfig.Credentials)
			ctrl, err := controller.New(sharedWriter, workerConfig, ds)
			if err != nil {
				errCollection.Add(fmt.Errorf("constructing controller for %s: %s", workerName, err))
				return
			}

			result := <-ctrl.StartInstance()
			if result.Err != nil {
				errCollection.Add(fmt.Errorf("starting worker %s: %s", workerName, result.Err))
				return
			}

			address, _ := ctrl.CurrentAddress()
			instanceCollection.Add(manifest.ProvisionedInstance{
				Worker:     workerName,
				InstanceID: result.InstanceID,
				ImageID:    result.ImageID,
				Address:    address,
			})
		}(m.Workers[i])
	}

	logger.Println("Waiting for controllers to finish...")
	wg.Wait()

	combinedErr := errCollection.Error()
	if combinedErr != nil {
		logger.Fatal(combinedErr)
	}

	m.ProvisionedInstances = instanceCollection.GetAll()

	err = m.Write(os.Stdout)
	if err != nil {
		logger.Fatalf("writing manifest: %s", err)
	}
	logger.Println("Provisioning finished successfully")
}

type logWriter struct {
	sync.Mutex
	writer io.Writer
}

func (l *logWriter) Write(message []byte) (int, error) {
	l.Lock()
	defer l.Unlock()

	return l.writer.Write(message)
}
