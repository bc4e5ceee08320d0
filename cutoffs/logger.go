package cutoffs

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogFile is appended to by the purgeCutoffs command.
const LogFile = "purge_haplotigs_minima.log"

const timeFormat = "2006-01-02 15:04:05,000"

// logFormatter writes each entry as "<time> <message>".
type logFormatter struct{}

func (logFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b := make([]byte, 0, len(timeFormat)+len(e.Message)+2)
	b = e.Time.AppendFormat(b, timeFormat)
	b = append(b, ' ')
	b = append(b, e.Message...)
	b = append(b, '\n')
	return b, nil
}

// NewLogger returns a debug level logger writing timestamped messages to out.
func NewLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(logFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log
}
