// Command server runs the YOLO object-detection HTTP service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Pinont/Image-Processing-AI-x-Blockchain/config"
	"github.com/Pinont/Image-Processing-AI-x-Blockchain/detector"
	"github.com/Pinont/Image-Processing-AI-x-Blockchain/inference"
	"github.com/Pinont/Image-Processing-AI-x-Blockchain/server"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	if err := inference.InitEnvironment(cfg.OrtLibPath); err != nil {
		log.WithError(err).Fatal("initialize onnxruntime")
	}
	defer inference.DestroyEnvironment()

	pool, err := inference.NewPool(func() (*inference.Session, error) {
		return inference.NewSession(cfg.ModelPath)
	}, cfg.PoolSize, cfg.AcquireTimeout)
	if err != nil {
		log.WithError(err).WithField("model", cfg.ModelPath).Fatal("create session pool")
	}
	defer pool.Close()

	if err := pool.WarmUp(); err != nil {
		log.WithError(err).Warn("session warm-up failed")
	}

	det := detector.New(pool, detector.Config{
		ConfidenceThreshold: cfg.ConfidenceThreshold,
		IoUThreshold:        cfg.IoUThreshold,
	})

	handler := server.NewHandler(server.NewPipeline(det), log)
	srv := server.New("0.0.0.0:"+cfg.Port, handler, cfg.ReadTimeout, cfg.WriteTimeout)

	go func() {
		log.WithFields(logrus.Fields{
			"addr":      srv.Addr,
			"model":     cfg.ModelPath,
			"pool_size": pool.Size(),
		}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
