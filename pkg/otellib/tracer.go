package otellib

import (
	"context"
	"fmt"
	"github.com/QuangTung97/crowdfund-escrow/config"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"time"
)

// InitOtel creates a tracer provider exporting to jaeger when enabled
func InitOtel(serviceName string, env string, conf config.JaegerConfig) (*sdktrace.TracerProvider, func()) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		attribute.String("environment", env),
	)

	if !conf.Enabled {
		tp := sdktrace.NewTracerProvider(sdktrace.WithResource(res))
		return tp, func() {}
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(conf.URL)))
	if err != nil {
		panic(err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return tp, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := tp.Shutdown(ctx)
		if err != nil {
			fmt.Println("[ERROR] Shutdown tracer provider:", err)
		}
	}
}
