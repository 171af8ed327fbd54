package integration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/WendelHime/torrentinfo/internal/bencode"
	"github.com/WendelHime/torrentinfo/internal/decoder"
	"github.com/WendelHime/torrentinfo/internal/logic"
	"github.com/cucumber/godog"
)

type IntegrationTest struct {
	Inspector logic.Inspector
	value     string
	file      io.ReadCloser
	output    bytes.Buffer
	err       error
}

func (i *IntegrationTest) theBencodedValue(value string) error {
	i.value = value
	return nil
}

func (i *IntegrationTest) iDecodeIt() error {
	i.err = i.Inspector.Decode(i.value, &i.output)
	return nil
}

func (i *IntegrationTest) iHaveATorrentFile(torrentPath string) error {
	f, err := os.Open(torrentPath)
	if err != nil {
		return err
	}

	i.file = f

	return nil
}

func (i *IntegrationTest) iInspectIt() error {
	defer i.file.Close()
	i.err = i.Inspector.Info(i.file, &i.output)
	return nil
}

func (i *IntegrationTest) theOutputShouldBe(expected string) error {
	if i.err != nil {
		return i.err
	}
	if actual := strings.TrimSuffix(i.output.String(), "\n"); actual != expected {
		return fmt.Errorf("expected output %q, got %q", expected, actual)
	}
	return nil
}

func (i *IntegrationTest) theOutputShouldContain(expected string) error {
	if i.err != nil {
		return i.err
	}
	if !strings.Contains(i.output.String(), expected) {
		return fmt.Errorf("output does not contain %q:\n%s", expected, i.output.String())
	}
	return nil
}

func (i *IntegrationTest) shouldFailWith(expected string) error {
	if i.err == nil {
		return fmt.Errorf("expected an error containing %q", expected)
	}
	if message, _ := logic.Describe(i.err); !strings.Contains(message, expected) {
		return fmt.Errorf("expected an error containing %q, got %q", expected, message)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	i := &IntegrationTest{}
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*i = IntegrationTest{
			Inspector: logic.NewInspector(decoder.NewDecoder(), bencode.DefaultOptions(), slog.New(slog.NewTextHandler(io.Discard, nil))),
		}
		return ctx, nil
	})
	ctx.Step(`^the bencoded value "([^"]*)"$`, i.theBencodedValue)
	ctx.Step(`^I decode it$`, i.iDecodeIt)
	ctx.Step(`^I have a torrent file "([^"]*)"$`, i.iHaveATorrentFile)
	ctx.Step(`^I inspect it$`, i.iInspectIt)
	ctx.Step(`^the output should be '(.*)'$`, i.theOutputShouldBe)
	ctx.Step(`^the output should contain "([^"]*)"$`, i.theOutputShouldContain)
	ctx.Step(`^decoding should fail with "([^"]*)"$`, i.shouldFailWith)
	ctx.Step(`^inspecting should fail with "([^"]*)"$`, i.shouldFailWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t, // Testing instance that will run subtests.
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
