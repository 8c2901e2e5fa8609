package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shenikar/attendance_system/internal/client"
	"github.com/shenikar/attendance_system/internal/config"
	"github.com/shenikar/attendance_system/internal/models"
	"github.com/shenikar/attendance_system/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Терминальный клиент отметок: ввод PIN, определение местоположения,
// разрешение адреса и отправка отметки на сервер.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Наблюдение за местоположением сворачивается при завершении клиента
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
	}()

	api := client.NewAPIClient(cfg.ServerURL, cfg.GeocodeTimeout)
	source := client.NewStaticLocationSource(cfg.FallbackLat, cfg.FallbackLon)
	controller := client.NewController(api, source, log, cfg)
	controller.Start(ctx)
	controller.RefreshToday(ctx)

	fmt.Println("Attendance check-in client. Commands: pin <value>, type in|out, remarks <text>, submit, logs, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		switch cmd {
		case "pin":
			controller.SetPIN(strings.TrimSpace(arg))
		case "type":
			switch strings.TrimSpace(arg) {
			case string(models.CheckIn):
				controller.SetCheckType(models.CheckIn)
			case string(models.CheckOut):
				controller.SetCheckType(models.CheckOut)
			default:
				fmt.Println("usage: type in|out")
			}
		case "remarks":
			controller.SetRemarks(strings.TrimSpace(arg))
		case "submit":
			if !controller.CanSubmit() {
				fmt.Println("submit disabled: PIN empty or address not resolved yet")
				continue
			}
			if err := controller.Submit(ctx); err != nil {
				log.WithError(err).Error("Submit failed")
			}
			if msg := controller.Message(); msg != "" {
				fmt.Println(msg)
				controller.DismissMessage()
			} else {
				fmt.Println("submitted")
				printLogs(controller, cfg)
			}
		case "logs":
			controller.RefreshToday(ctx)
			printLogs(controller, cfg)
		case "quit", "exit":
			cancel()
			return
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

// printLogs печатает сегодняшние отметки, самые свежие первыми
func printLogs(controller *client.Controller, cfg *config.Config) {
	logs := controller.TodayLogs()
	if len(logs) == 0 {
		fmt.Println("no logs for today")
		return
	}
	for _, l := range logs {
		line := fmt.Sprintf("%s  %s", l.CheckTime.In(cfg.Location).Format("15:04:05"), l.CheckType)
		if l.Remarks != "" {
			line += "  " + l.Remarks
		}
		fmt.Println(line)
	}
}
