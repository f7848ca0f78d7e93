// Command client queries a running scoring server and prints the responses
// as JSON.
//
//	client --addr localhost:50051 --start 2024-01-01 --end 2024-01-31 overall
//	client --start 2024-02-01 --end 2024-02-29 --second-start 2024-01-01 --second-end 2024-01-31 change
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	pb "github.com/godilite/ticket-scoring/api/v1"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const usage = `usage: client [flags] <categories|tickets|overall|change|health|all>`

var marshaler = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

type options struct {
	addr        string
	start       string
	end         string
	secondStart string
	secondEnd   string
	timeout     time.Duration
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var o options
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.addr, "addr", "localhost:50051", "scoring server address")
	fs.StringVar(&o.start, "start", "", "period start date (YYYY-MM-DD)")
	fs.StringVar(&o.end, "end", "", "period end date (YYYY-MM-DD)")
	fs.StringVar(&o.secondStart, "second-start", "", "baseline period start date for change")
	fs.StringVar(&o.secondEnd, "second-end", "", "baseline period end date for change")
	fs.DurationVarP(&o.timeout, "timeout", "t", 10*time.Second, "per-call timeout")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return o, nil, fmt.Errorf("expected exactly one command, got %d", fs.NArg())
	}
	return o, fs.Args(), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, rest, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	conn, err := grpc.NewClient(o.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial %s: %w", o.addr, err)
	}
	defer conn.Close()

	client := pb.NewTicketScoringClient(conn)
	period := &pb.PeriodRequest{StartDate: o.start, EndDate: o.end}

	calls := map[string]func(context.Context) (proto.Message, error){
		"categories": func(ctx context.Context) (proto.Message, error) { return client.GetCategoryScores(ctx, period) },
		"tickets":    func(ctx context.Context) (proto.Message, error) { return client.GetScoresByTicket(ctx, period) },
		"overall":    func(ctx context.Context) (proto.Message, error) { return client.GetOverallScore(ctx, period) },
		"change": func(ctx context.Context) (proto.Message, error) {
			return client.GetOverallScoreChange(ctx, &pb.PeriodRangeRequest{
				StartDate:       o.start,
				EndDate:         o.end,
				SecondStartDate: o.secondStart,
				SecondEndDate:   o.secondEnd,
			})
		},
		"health": func(ctx context.Context) (proto.Message, error) {
			return healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{
				Service: pb.TicketScoring_ServiceDesc.ServiceName,
			})
		},
	}

	command := rest[0]
	names := []string{command}
	if command == "all" {
		names = []string{"categories", "tickets", "overall", "change"}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	for _, name := range names {
		call, ok := calls[name]
		if !ok {
			return fmt.Errorf("unknown command %q\n%s", name, usage)
		}

		callCtx, cancel := context.WithTimeout(ctx, o.timeout)
		resp, err := call(callCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		body, err := marshaler.Marshal(resp)
		if err != nil {
			return fmt.Errorf("%s: marshal response: %w", name, err)
		}
		if err := enc.Encode(map[string]json.RawMessage{name: body}); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
