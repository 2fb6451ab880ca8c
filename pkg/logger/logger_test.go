package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		So(Init(), ShouldBeNil)
		defer func() { So(Sync(), ShouldBeNil) }()

		Convey("Then Get and Named return loggers", func() {
			So(Get(), ShouldNotBeNil)
			So(Named("test"), ShouldNotBeNil)
		})
	})
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a text logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWithWriter(&buf, FormatText), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging with fields", func() {
			Named("scorer").With(String("sport", "baseball")).Info(ctx, "scored",
				Int("overall", 87), Bool("active", true), Error(errors.New("boom")))

			Convey("Then fields, component and source are rendered", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "msg=scored")
				So(out, ShouldContainSubstring, "component=scorer")
				So(out, ShouldContainSubstring, "sport=baseball")
				So(out, ShouldContainSubstring, "overall=87")
				So(out, ShouldContainSubstring, "active=true")
				So(out, ShouldContainSubstring, "error=boom")
				So(out, ShouldContainSubstring, "source=logger/logger_test.go:")
			})
		})

		Convey("When the level is raised", func() {
			So(SetLevelString("warn"), ShouldBeNil)
			Get().Info(ctx, "hidden")
			Get().Warn(ctx, "shown")

			Convey("Then lower levels are dropped", func() {
				So(buf.String(), ShouldNotContainSubstring, "hidden")
				So(buf.String(), ShouldContainSubstring, "shown")
				So(SetLevelString("info"), ShouldBeNil)
			})
		})

		Convey("When the level string is unknown", func() {
			Convey("Then it is rejected", func() {
				So(SetLevelString("verbose"), ShouldNotBeNil)
			})
		})
	})

	Convey("Given a JSON logger", t, func() {
		var buf bytes.Buffer
		l, err := New(&buf, FormatJSON)
		So(err, ShouldBeNil)
		l.Info(context.Background(), "hello", Float64("ratio", 1.5))

		Convey("Then the line is JSON", func() {
			line := strings.TrimSpace(buf.String())
			So(line, ShouldStartWith, "{")
			So(line, ShouldContainSubstring, `"ratio":1.5`)
		})
	})

	Convey("Given an unknown format", t, func() {
		_, err := New(&bytes.Buffer{}, "xml")

		Convey("Then construction fails", func() {
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a nop logger", t, func() {
		Convey("Then logging does not panic", func() {
			So(func() { NewNop().Named("x").Debug(context.Background(), "ignored") }, ShouldNotPanic)
		})
	})
}
