package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/quangdm/cloudscore/internal/app"
	"github.com/quangdm/cloudscore/internal/export"
	"github.com/quangdm/cloudscore/internal/importer"
	"github.com/quangdm/cloudscore/internal/metrics"
	"github.com/quangdm/cloudscore/internal/session"
	"github.com/quangdm/cloudscore/internal/view"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	if addr := service.Config.Metrics.Addr; addr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(addr, nil); err != nil {
				logger.Error.Printf("Metrics endpoint failed: %v", err)
			}
		}()
	}

	ctx := context.Background()

	switch flag.Arg(0) {
	case "list":
		runList(ctx, service, flag.Arg(1))
	case "export":
		runExport(ctx, service, flag.Arg(1), flag.Arg(2))
	case "print":
		runPrint(ctx, service, flag.Arg(1), flag.Arg(2))
	case "import":
		runImport(ctx, service, flag.Arg(1), flag.Arg(2))
	case "delete":
		runDelete(ctx, service, flag.Arg(1))
	default:
		fmt.Fprintln(os.Stderr, "usage: gradebook [-config config.toml] <list [term]|export <id> <out.xlsx>|print <id> <out.html>|import <file.xlsx> [sheet]|delete <id>>")
		os.Exit(2)
	}
}

func runList(ctx context.Context, service *app.Service, term string) {
	records, err := service.LoadRecords(ctx)
	if err != nil {
		logger.Error.Fatalf("Failed to load records: %v", err)
	}
	for _, rec := range view.FilterRecords(records, term) {
		visibility := "riêng tư"
		if rec.IsPublic {
			visibility = "công khai"
		}
		fmt.Printf("%s\t%s\t%s\t%d học sinh\t%s\t%s\n",
			rec.ID,
			rec.RecordName,
			rec.RecordClass,
			len(rec.Students),
			visibility,
			rec.LastModified.Format(service.Config.Display.TimestampFormat),
		)
	}
}

func runExport(ctx context.Context, service *app.Service, id, out string) {
	sess := openByID(ctx, service, id)
	f, err := os.Create(out)
	if err != nil {
		logger.Error.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	if err := export.WriteXLSX(f, sess.Record(), sess.VisibleColumns()); err != nil {
		logger.Error.Fatalf("Export failed: %v", err)
	}
	logger.Info.Printf("Exported %q to %s", sess.Record().RecordName, out)
}

func runPrint(ctx context.Context, service *app.Service, id, out string) {
	sess := openByID(ctx, service, id)
	f, err := os.Create(out)
	if err != nil {
		logger.Error.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	if err := export.WritePrintDocument(f, sess.Record(), sess.VisibleColumns()); err != nil {
		logger.Error.Fatalf("Print export failed: %v", err)
	}
	logger.Info.Printf("Wrote print document for %q to %s", sess.Record().RecordName, out)
}

func runImport(ctx context.Context, service *app.Service, path, sheetName string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error.Fatalf("Failed to read file: %v", err)
	}
	sheets, err := importer.ReadWorkbook(path, data)
	if err != nil {
		logger.Error.Fatalf("Failed to parse spreadsheet: %v", err)
	}
	sheet, err := importer.FindSheet(sheets, sheetName)
	if err != nil {
		logger.Error.Fatalf("%v", err)
	}

	mapping := importer.Detect(sheet.Rows)
	recordName := fmt.Sprintf("%s - %s", fileBase(path), sheet.Name)
	rec, err := importer.Commit(sheet.Rows, mapping, recordName)
	if err != nil {
		logger.Error.Fatalf("Import mapping failed: %v", err)
	}
	metrics.StudentsImported.WithLabelValues("spreadsheet").Add(float64(len(rec.Students)))
	logger.Info.Printf("Import %q: %d học sinh, %d cột điểm, lớp %q",
		rec.RecordName, len(rec.Students), len(rec.ScoreColumns), rec.RecordClass)

	sess := service.OpenRecord(rec)
	if err := sess.Persist(ctx, service.Remote); err != nil {
		logger.Error.Fatalf("Failed to save imported record: %v", err)
	}
	logger.Info.Printf("Saved record %s", rec.ID)
}

func runDelete(ctx context.Context, service *app.Service, id string) {
	sess := openByID(ctx, service, id)

	confirmation, err := service.Confirm.Request(
		fmt.Sprintf("Xóa bản ghi %q? [y/N] ", sess.Record().RecordName))
	if err != nil {
		logger.Error.Fatalf("%v", err)
	}
	go resolveFromStdin(confirmation)

	if !<-confirmation.Done() {
		logger.Info.Println("Delete cancelled")
		return
	}
	if err := sess.Delete(ctx, service.Remote); err != nil {
		logger.Error.Fatalf("Delete failed: %v", err)
	}
	logger.Info.Printf("Deleted record %s", id)
}

func openByID(ctx context.Context, service *app.Service, id string) *session.Session {
	if _, err := service.LoadRecords(ctx); err != nil {
		logger.Error.Fatalf("Failed to load records: %v", err)
	}
	rec, ok := service.FindRecord(id)
	if !ok {
		logger.Error.Fatalf("Record %s not found", id)
	}
	return service.OpenRecord(rec)
}

func resolveFromStdin(c *session.Confirmation) {
	fmt.Print(c.Message)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	c.Resolve(answer == "y" || answer == "yes")
}

func fileBase(path string) string {
	base := path
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	return base
}
