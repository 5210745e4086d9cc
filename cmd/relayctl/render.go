package main

import (
	"fmt"
	"io"
	"realtime-relay/domain"
	"realtime-relay/infrastructure/httpapi"
	"realtime-relay/services"
	"slices"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type renderer struct {
	out     io.Writer
	colours bool
}

func (r renderer) title(text string) {
	if r.colours {
		text = color.New(color.BgBlack, color.FgGreen).Render(text)
	}
	fmt.Fprintln(r.out, text)
}

func (r renderer) table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
}

func (r renderer) Stats(stats services.Stats) {
	c := stats.Connections
	r.title("CONNECTIONS")
	r.table([]string{"Total", "Clients", "Drivers", "Admins"}, [][]string{{
		strconv.Itoa(c.Total), strconv.Itoa(c.Clients), strconv.Itoa(c.Drivers), strconv.Itoa(c.Admins),
	}})

	rooms := lo.Keys(stats.Rooms)
	slices.Sort(rooms)
	r.title("ROOMS")
	r.table([]string{"Room", "Sockets"}, lo.Map(rooms, func(room string, _ int) []string {
		return []string{room, strconv.Itoa(stats.Rooms[room])}
	}))
}

func (r renderer) Connections(list services.ConnectionList) {
	r.title(fmt.Sprintf("CONNECTIONS (%s): %d", list.Type, list.Total))
	r.table([]string{"Socket", "User", "Type", "Name", "Rooms", "Connected"},
		lo.Map(list.Connections, func(c domain.ConnectionView, _ int) []string {
			return []string{
				c.SocketID,
				c.UserID.String(),
				string(c.User.Type),
				c.User.Name,
				strings.Join(c.Rooms, ","),
				domain.Timestamp(c.ConnectedAt),
			}
		}))
}

func (r renderer) Sessions(list httpapi.SessionList) {
	r.title(fmt.Sprintf("SESSIONS: %d", list.Total))
	r.table([]string{"At", "Kind", "Socket", "User", "Type"},
		lo.Map(list.Sessions, func(e domain.SessionEvent, _ int) []string {
			return []string{
				domain.Timestamp(e.At),
				string(e.Kind),
				e.ConnectionID,
				e.ActorID.String(),
				string(e.ActorType),
			}
		}))
}
