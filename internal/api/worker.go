package api

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"

	app "emotion-worker/internal/application"
	"emotion-worker/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errLineTooLong = errors.New("frame data exceeds the maximum line length")

// FrameProcessor обрабатывает одну строку запроса.
type FrameProcessor interface {
	Process(ctx context.Context, line string) (*entity.FrameResult, error)
}

// Worker читает по одному кадру на строку и пишет по одной JSON-строке в ответ.
// Следующая строка читается только после того, как ответ на предыдущую отправлен.
type Worker struct {
	in       *bufio.Reader
	out      *bufio.Writer
	frames   FrameProcessor
	sessions *app.SessionService
	maxLine  int
}

type lineResult struct {
	line string
	err  error
}

// NewWorker создаёт воркер поверх потоков ввода и вывода.
func NewWorker(in io.Reader, out io.Writer, frames FrameProcessor, sessions *app.SessionService, maxLineBytes int) *Worker {
	return &Worker{
		in:       bufio.NewReaderSize(in, 1<<20),
		out:      bufio.NewWriter(out),
		frames:   frames,
		sessions: sessions,
		maxLine:  maxLineBytes,
	}
}

// Run обслуживает поток до конца ввода или отмены ctx (обе ситуации штатные, nil).
// Ошибка возвращается только при сбое самого цикла: запись ответа, чтение ввода.
func (w *Worker) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("worker: %v (panic)\nstack: %s", r, debug.Stack())
			err = w.fail(ctx, fmt.Errorf("%v", r))
		}
	}()

	if _, err := w.sessions.Serve(ctx); err != nil {
		return err
	}
	log.Info("worker: serving frames")

	for {
		line, readErr := w.readLine(ctx)
		switch {
		case ctx.Err() != nil:
			w.stop(context.Background(), "interrupted")
			return nil
		case errors.Is(readErr, errLineTooLong):
			if err := w.reject(ctx, readErr); err != nil {
				return w.fail(ctx, err)
			}
			continue
		case readErr != nil && !errors.Is(readErr, io.EOF):
			return w.fail(ctx, fmt.Errorf("read frame: %w", readErr))
		}

		if strings.TrimSpace(line) != "" {
			if err := w.handle(ctx, line); err != nil {
				return w.fail(ctx, err)
			}
		}

		if errors.Is(readErr, io.EOF) {
			w.stop(ctx, "input closed")
			return nil
		}
	}
}

func (w *Worker) handle(ctx context.Context, line string) error {
	// Принятый кадр доводится до конца даже после отмены ctx.
	start := time.Now()
	result, err := w.frames.Process(context.WithoutCancel(ctx), line)
	elapsed := time.Since(start)

	if err != nil {
		return w.reject(ctx, err)
	}

	w.record(ctx, len(result.Predictions), false)
	if log.IsLevelEnabled(log.DebugLevel) {
		summary, _ := json.Marshal(result.WithoutFrame())
		log.Debugf("frame: processed %s with %s in %s", humanize.Bytes(uint64(len(line))),
			english.Plural(len(result.Predictions), "face", "faces"), elapsed)
		log.Debugf("frame: result %s", summary)
	}

	return w.write(result)
}

// reject отвечает ошибкой на один кадр; цикл продолжается.
func (w *Worker) reject(ctx context.Context, err error) error {
	log.Errorf("frame: %s", err)
	w.record(ctx, 0, true)
	return w.write(entity.ErrorResult{Error: errorMessage(err)})
}

func (w *Worker) record(ctx context.Context, faces int, failed bool) {
	if _, err := w.sessions.RecordFrame(ctx, faces, failed); err != nil {
		log.Errorf("session: %s", err)
	}
}

func (w *Worker) fail(ctx context.Context, err error) error {
	log.Errorf("worker: unexpected error: %s", err)
	_ = w.write(entity.ErrorResult{Error: "Unexpected error: " + err.Error()})
	if _, serr := w.sessions.Fail(context.Background()); serr != nil {
		log.Errorf("session: %s", serr)
	}
	return fmt.Errorf("serve frames: %w", err)
}

func (w *Worker) stop(ctx context.Context, reason string) {
	session, err := w.sessions.Stop(ctx)
	if err != nil {
		log.Errorf("session: %s", err)
		return
	}
	log.Infof("worker: stopped (%s) after %s, %s and %s in %s", reason,
		english.Plural(session.Frames, "frame", "frames"),
		english.Plural(session.Failures, "failure", "failures"),
		english.Plural(session.Faces, "face", "faces"),
		time.Since(session.StartedAt).Round(time.Millisecond))
}

func (w *Worker) write(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.out.Write(data); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return w.out.Flush()
}

// readLine блокируется до следующей строки или отмены ctx.
func (w *Worker) readLine(ctx context.Context) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := w.nextLine()
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

func (w *Worker) nextLine() (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := w.in.ReadSlice('\n')
		if !tooLong {
			// Перевод строки в лимит не входит.
			if len(buf)+len(bytes.TrimRight(chunk, "\r\n")) > w.maxLine {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if tooLong && (err == nil || errors.Is(err, io.EOF)) {
			return "", errLineTooLong
		}
		return string(buf), err
	}
}

// errorMessage превращает ошибку в сообщение для вызывающей стороны.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrDecodeImage):
		return entity.ErrDecodeImage.Error()
	case errors.Is(err, entity.ErrNoFrameData):
		return entity.ErrNoFrameData.Error()
	}
	return err.Error()
}
