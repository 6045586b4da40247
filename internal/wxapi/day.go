package wxapi

import (
	"context"
	"fmt"

	"github.com/shinji-kodama/wxlog/internal/dates"
	"github.com/shinji-kodama/wxlog/internal/model"
)

const jdayQuery = `query jday($uid: ID!, $ymd: YMD) {
  jday(uid: $uid, ymd: $ymd) {
    log
    bw
    eblocks {
      eid
      sets { w r s lb rpe pr est1rm eff int type t d dunit speed force }
    }
    exercises {
      exercise { id name type }
    }
  }
}`

// FetchDay fetches the journal entry of user uid on date. It returns nil
// and no error when the user logged nothing that day.
func FetchDay(ctx context.Context, q Querier, token, uid string, date dates.Date) (*model.DayLog, error) {
	resp, err := Query[struct {
		JDay *model.DayLog `json:"jday"`
	}](ctx, q, Request{
		Query:     jdayQuery,
		Variables: map[string]any{"uid": uid, "ymd": date.String()},
		Token:     token,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", date, err)
	}
	return resp.JDay, nil
}
