package services

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strconv"

	"busstation/internal/domain/models"
	"busstation/internal/repositories"
	"busstation/internal/utils"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

// DocsService renders a printable e-ticket for one Ticket row.
type DocsService struct {
	Repo      repositories.RecordRepository
	Log       *zap.Logger
	RequestID string
	Loader    func(ctx context.Context, id int64) (models.TicketDetail, error)
}

func (s DocsService) WithRequestID(rid string) DocsService {
	s.RequestID = rid
	return s
}

func (s DocsService) GenerateETicket(ctx context.Context, ticketID int64) ([]byte, string, error) {
	data, err := s.load(ctx, ticketID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.Log, s.RequestID, "docs", "generate_eticket", fmt.Sprintf("ticket_id=%d", ticketID))
	return buildETicketPDF(data)
}

func (s DocsService) load(ctx context.Context, id int64) (models.TicketDetail, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return s.Repo.TicketDetail(ctx, id)
}

// ticketFont is embedded so Cyrillic passenger names and place names render.
const ticketFont = "DejaVu"

//go:embed fonts/DejaVuSansCondensed.ttf
var fontRegular []byte

//go:embed fonts/DejaVuSansCondensed-Bold.ttf
var fontBold []byte

//go:embed fonts/DejaVuSansCondensed-Oblique.ttf
var fontOblique []byte

func newETicketPDF(d models.TicketDetail) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddUTF8FontFromBytes(ticketFont, "", fontRegular)
	pdf.AddUTF8FontFromBytes(ticketFont, "B", fontBold)
	pdf.AddUTF8FontFromBytes(ticketFont, "I", fontOblique)
	pdf.SetTitle("Bus ticket", true)
	pdf.AddPage()
	pdf.SetFont(ticketFont, "B", 18)
	pdf.Cell(0, 10, "BUS TICKET")
	pdf.Ln(12)

	rows := [][2]string{
		{"Ticket no", strconv.FormatInt(d.ID, 10)},
		{"Passenger", utils.Safe(d.PassengerName, "-")},
		{"Seat", utils.Safe(d.SeatNumber, "-")},
		{"Bus", fmt.Sprintf("%s to %s", utils.Safe(d.RouteNumber, "-"), utils.Safe(d.Destination, "-"))},
		{"Route", fmt.Sprintf("%s -> %s (%s km)", utils.Safe(d.StartPoint, "-"), utils.Safe(d.EndPoint, "-"),
			strconv.FormatFloat(d.DistanceKm, 'f', -1, 64))},
		{"Departure", utils.Safe(d.DepartureTime, "-")},
		{"Arrival", utils.Safe(d.ArrivalTime, "-")},
		{"Schedule no", strconv.FormatInt(d.ScheduleID, 10)},
	}
	pdf.SetFont(ticketFont, "", 11)
	for _, r := range rows {
		pdf.Cell(32, 7, r[0]+":")
		pdf.Cell(0, 7, r[1])
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont(ticketFont, "B", 13)
	pdf.Cell(0, 8, "Price: "+utils.FormatHryvnia(d.Price))
	pdf.Ln(12)

	pdf.SetFont(ticketFont, "I", 9)
	pdf.MultiCell(0, 5, "Valid for one passenger and one seat. Present at boarding.", "", "", false)
	return pdf
}

func buildETicketPDF(d models.TicketDetail) ([]byte, string, error) {
	pdf := newETicketPDF(d)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("TICKET_%d_%s.pdf", d.ID, utils.SafeFilenamePart(d.PassengerName+"_"+d.SeatNumber))
	return buf.Bytes(), filename, nil
}
