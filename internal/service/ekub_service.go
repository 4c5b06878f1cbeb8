package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/nebaware/temariware/internal/ekub"
	apperrors "github.com/nebaware/temariware/internal/errors"
	"github.com/nebaware/temariware/internal/models"
	"github.com/nebaware/temariware/internal/storage"
	pb "github.com/nebaware/temariware/pkg/proto"
	"github.com/nebaware/temariware/pkg/proto/protoconnect"
)

// EkubService implements the Connect EkubService on top of the payout
// engine. Rotating, closing and cancelling a group is reserved for its
// founder.
type EkubService struct {
	protoconnect.UnimplementedEkubServiceHandler
	engine *ekub.Engine
	users  storage.UserStore
}

// NewEkubService creates a new EkubService.
func NewEkubService(engine *ekub.Engine, users storage.UserStore) *EkubService {
	return &EkubService{engine: engine, users: users}
}

// CreateGroup creates a group with the caller as founder at spot 1.
func (s *EkubService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateGroup request received",
		"user_id", userID,
		"name", req.Msg.Name,
		"contribution", req.Msg.ContributionAmount,
		"frequency", req.Msg.Frequency,
		"max_members", req.Msg.MaxMembers,
	)

	amount, err := parseAmount(req.Msg.ContributionAmount)
	if err != nil {
		return nil, connectError("CreateGroup", apperrors.Wrap(apperrors.CodeInvalidConfig, "invalid contribution amount", err))
	}

	group, err := s.engine.CreateGroup(ctx, userID, ekub.GroupConfig{
		Name:               req.Msg.Name,
		ContributionAmount: amount,
		Frequency:          models.Frequency(req.Msg.Frequency),
		MaxMembers:         int(req.Msg.MaxMembers),
	})
	if err != nil {
		return nil, connectError("CreateGroup", err, "user_id", userID)
	}

	slog.Info("Group created", "group_id", group.ID)
	return connect.NewResponse(&pb.CreateGroupResponse{Group: s.groupProto(ctx, group)}), nil
}

// GetGroup returns a group with its roster.
func (s *EkubService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	if err := requireGroupID(req.Msg.GroupId); err != nil {
		return nil, connectError("GetGroup", err)
	}

	group, err := s.engine.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, connectError("GetGroup", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.GetGroupResponse{Group: s.groupProto(ctx, group)}), nil
}

// ListGroups lists groups, optionally only the caller's and optionally by
// status.
func (s *EkubService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	status := models.GroupStatus(req.Msg.Status)
	switch status {
	case "", models.GroupActive, models.GroupCompleted, models.GroupCancelled:
	default:
		return nil, connectError("ListGroups", apperrors.New(apperrors.CodeInvalidConfig, fmt.Sprintf("unknown status %q", req.Msg.Status)))
	}

	var (
		groups []*models.Group
		err    error
	)
	if req.Msg.Mine {
		userID, authErr := callerID(ctx)
		if authErr != nil {
			return nil, authErr
		}
		groups, err = s.engine.ListMemberGroups(ctx, userID)
		groups = filterStatus(groups, status)
	} else {
		groups, err = s.engine.ListGroups(ctx, status)
	}
	if err != nil {
		return nil, connectError("ListGroups", err)
	}

	names := displayNames(ctx, s.users, groups...)
	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = toGroupProto(g, names)
	}
	return connect.NewResponse(&pb.ListGroupsResponse{Groups: out}), nil
}

// JoinGroup enrolls the caller at the next spot.
func (s *EkubService) JoinGroup(ctx context.Context, req *connect.Request[pb.JoinGroupRequest]) (*connect.Response[pb.JoinGroupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireGroupID(req.Msg.GroupId); err != nil {
		return nil, connectError("JoinGroup", err)
	}

	group, err := s.engine.Join(ctx, req.Msg.GroupId, userID)
	if err != nil {
		return nil, connectError("JoinGroup", err, "group_id", req.Msg.GroupId, "user_id", userID)
	}

	slog.Info("Member joined group", "group_id", group.ID, "user_id", userID, "members", group.MembersCount)
	return connect.NewResponse(&pb.JoinGroupResponse{Group: s.groupProto(ctx, group)}), nil
}

// Contribute moves one contribution from the caller's wallet into the pool.
func (s *EkubService) Contribute(ctx context.Context, req *connect.Request[pb.ContributeRequest]) (*connect.Response[pb.ContributeResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireGroupID(req.Msg.GroupId); err != nil {
		return nil, connectError("Contribute", err)
	}

	result, err := s.engine.Contribute(ctx, req.Msg.GroupId, userID)
	if err != nil {
		return nil, connectError("Contribute", err, "group_id", req.Msg.GroupId, "user_id", userID)
	}

	slog.Info("Contribution recorded", "group_id", req.Msg.GroupId, "user_id", userID, "pool", formatAmount(result.NewPoolTotal))
	return connect.NewResponse(&pb.ContributeResponse{
		NewBalance:   formatAmount(result.NewBalance),
		NewPoolTotal: formatAmount(result.NewPoolTotal),
	}), nil
}

// Rotate pays the pool to the next member in rotation order.
func (s *EkubService) Rotate(ctx context.Context, req *connect.Request[pb.RotateRequest]) (*connect.Response[pb.RotateResponse], error) {
	if err := s.requireFounder(ctx, req.Msg.GroupId); err != nil {
		return nil, connectError("Rotate", err, "group_id", req.Msg.GroupId)
	}

	payout, err := s.engine.Rotate(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, connectError("Rotate", err, "group_id", req.Msg.GroupId)
	}

	slog.Info("Payout completed",
		"group_id", payout.GroupID,
		"winner_id", payout.WinnerID,
		"spot", payout.Spot,
		"amount", formatAmount(payout.Amount),
		"pass_reset", payout.PassReset,
	)
	return connect.NewResponse(&pb.RotateResponse{
		WinnerId:   payout.WinnerID,
		WinnerName: payout.WinnerName,
		Spot:       int32(payout.Spot),
		Amount:     formatAmount(payout.Amount),
		PassReset:  payout.PassReset,
	}), nil
}

// CloseGroup completes a group once every member has won and the pool is
// empty.
func (s *EkubService) CloseGroup(ctx context.Context, req *connect.Request[pb.CloseGroupRequest]) (*connect.Response[pb.CloseGroupResponse], error) {
	if err := s.requireFounder(ctx, req.Msg.GroupId); err != nil {
		return nil, connectError("CloseGroup", err, "group_id", req.Msg.GroupId)
	}

	group, err := s.engine.Close(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, connectError("CloseGroup", err, "group_id", req.Msg.GroupId)
	}

	slog.Info("Group closed", "group_id", group.ID)
	return connect.NewResponse(&pb.CloseGroupResponse{Group: s.groupProto(ctx, group)}), nil
}

// CancelGroup cancels a group whose pool is empty.
func (s *EkubService) CancelGroup(ctx context.Context, req *connect.Request[pb.CancelGroupRequest]) (*connect.Response[pb.CancelGroupResponse], error) {
	if err := s.requireFounder(ctx, req.Msg.GroupId); err != nil {
		return nil, connectError("CancelGroup", err, "group_id", req.Msg.GroupId)
	}

	group, err := s.engine.Cancel(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, connectError("CancelGroup", err, "group_id", req.Msg.GroupId)
	}

	slog.Info("Group cancelled", "group_id", group.ID)
	return connect.NewResponse(&pb.CancelGroupResponse{Group: s.groupProto(ctx, group)}), nil
}

// GetPayoutSchedule projects the remaining payouts of the current pass.
func (s *EkubService) GetPayoutSchedule(ctx context.Context, req *connect.Request[pb.GetPayoutScheduleRequest]) (*connect.Response[pb.GetPayoutScheduleResponse], error) {
	if err := requireGroupID(req.Msg.GroupId); err != nil {
		return nil, connectError("GetPayoutSchedule", err)
	}

	group, schedule, err := s.engine.Schedule(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, connectError("GetPayoutSchedule", err, "group_id", req.Msg.GroupId)
	}

	names := displayNames(ctx, s.users, group)
	out := make([]*pb.ScheduledPayout, len(schedule))
	for i, p := range schedule {
		out[i] = &pb.ScheduledPayout{
			UserId:      p.UserID,
			DisplayName: names[p.UserID],
			Spot:        int32(p.Spot),
			Date:        p.Date.Unix(),
		}
	}
	return connect.NewResponse(&pb.GetPayoutScheduleResponse{Payouts: out}), nil
}

// requireFounder checks that the caller created the group. The creator
// never changes, so the check needs no lock.
func (s *EkubService) requireFounder(ctx context.Context, groupID string) error {
	userID, err := callerID(ctx)
	if err != nil {
		return err
	}
	if err := requireGroupID(groupID); err != nil {
		return err
	}
	group, err := s.engine.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if group.CreatorID != userID {
		return apperrors.New(apperrors.CodePermissionDenied, "only the group founder can do this")
	}
	return nil
}

func (s *EkubService) groupProto(ctx context.Context, group *models.Group) *pb.Group {
	return toGroupProto(group, displayNames(ctx, s.users, group))
}

func filterStatus(groups []*models.Group, status models.GroupStatus) []*models.Group {
	if status == "" {
		return groups
	}
	out := groups[:0]
	for _, g := range groups {
		if g.Status == status {
			out = append(out, g)
		}
	}
	return out
}
