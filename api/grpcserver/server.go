package grpcserver

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "callistonft/api/marketpb"
	"callistonft/domain/market"
	"callistonft/service"
)

// Server adapts TradeService to gRPC.
type Server struct {
	pb.UnimplementedMarketServer
	svc *service.TradeService
	log zerolog.Logger
}

func NewServer(svc *service.TradeService, log zerolog.Logger) *Server {
	return &Server{svc: svc, log: log}
}

// -------------------- Commands --------------------

func (s *Server) SetPrice(
	ctx context.Context,
	req *pb.SetPriceRequest,
) (*pb.MutationAck, error) {
	seq, err := s.svc.SetPrice(req.ItemId, req.Amount, market.Account(req.Caller), req.Data)
	if err != nil {
		return nil, toStatus(err)
	}

	s.log.Debug().
		Uint64("item", req.ItemId).
		Int64("amount", req.Amount).
		Uint64("seq", seq).
		Msg("grpc set_price")

	return &pb.MutationAck{Seq: seq}, nil
}

func (s *Server) SetBid(
	ctx context.Context,
	req *pb.SetBidRequest,
) (*pb.MutationAck, error) {
	seq, err := s.svc.SetBid(req.ItemId, market.Account(req.Caller), req.Funds, req.Data)
	if err != nil {
		return nil, toStatus(err)
	}

	s.log.Debug().
		Uint64("item", req.ItemId).
		Int64("funds", req.Funds).
		Uint64("seq", seq).
		Msg("grpc set_bid")

	return &pb.MutationAck{Seq: seq}, nil
}

func (s *Server) WithdrawBid(
	ctx context.Context,
	req *pb.WithdrawBidRequest,
) (*pb.MutationAck, error) {
	seq, err := s.svc.WithdrawBid(req.ItemId, market.Account(req.Caller))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MutationAck{Seq: seq}, nil
}

func (s *Server) Transfer(
	ctx context.Context,
	req *pb.TransferRequest,
) (*pb.MutationAck, error) {
	seq, err := s.svc.Transfer(req.ItemId, market.Account(req.Caller), market.Account(req.To), req.Data)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MutationAck{Seq: seq}, nil
}

func (s *Server) SilentTransfer(
	ctx context.Context,
	req *pb.SilentTransferRequest,
) (*pb.MutationAck, error) {
	seq, err := s.svc.SilentTransfer(req.ItemId, market.Account(req.Caller), market.Account(req.To))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MutationAck{Seq: seq}, nil
}

func (s *Server) Mint(
	ctx context.Context,
	req *pb.MintRequest,
) (*pb.MutationAck, error) {
	seq, err := s.svc.Mint(req.ItemId, market.Account(req.Owner), market.Account(req.Caller))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MutationAck{Seq: seq}, nil
}

func (s *Server) Burn(
	ctx context.Context,
	req *pb.BurnRequest,
) (*pb.MutationAck, error) {
	seq, err := s.svc.Burn(req.ItemId, market.Account(req.Caller))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MutationAck{Seq: seq}, nil
}

func (s *Server) Deposit(
	ctx context.Context,
	req *pb.DepositRequest,
) (*pb.MutationAck, error) {
	seq, err := s.svc.Deposit(market.Account(req.Account), req.Amount, market.Account(req.Caller))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MutationAck{Seq: seq}, nil
}

func (s *Server) DefineFeeTier(
	ctx context.Context,
	req *pb.DefineFeeTierRequest,
) (*pb.MutationAck, error) {
	seq, err := s.svc.DefineFeeTier(
		req.Tier,
		market.Account(req.Receiver),
		req.Rate,
		market.Account(req.Caller),
	)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MutationAck{Seq: seq}, nil
}

func (s *Server) AssignFeeTier(
	ctx context.Context,
	req *pb.AssignFeeTierRequest,
) (*pb.MutationAck, error) {
	seq, err := s.svc.AssignFeeTier(req.ItemId, req.Tier, market.Account(req.Caller))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MutationAck{Seq: seq}, nil
}

// -------------------- Queries --------------------

func (s *Server) PriceOf(
	ctx context.Context,
	req *pb.PriceOfRequest,
) (*pb.PriceOfResponse, error) {
	ask, err := s.svc.PriceOf(req.ItemId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PriceOfResponse{Amount: ask}, nil
}

func (s *Server) BidOf(
	ctx context.Context,
	req *pb.BidOfRequest,
) (*pb.BidOfResponse, error) {
	bid, err := s.svc.BidOf(req.ItemId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BidOfResponse{
		Amount: bid.Amount,
		Bidder: uint64(bid.Bidder),
		Time:   bid.Time,
	}, nil
}

func (s *Server) OwnerOf(
	ctx context.Context,
	req *pb.OwnerOfRequest,
) (*pb.OwnerOfResponse, error) {
	owner, err := s.svc.OwnerOf(req.ItemId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.OwnerOfResponse{Owner: uint64(owner)}, nil
}

func (s *Server) BalanceOf(
	ctx context.Context,
	req *pb.BalanceOfRequest,
) (*pb.BalanceOfResponse, error) {
	return &pb.BalanceOfResponse{
		Count: int32(s.svc.BalanceOf(market.Account(req.Account))),
	}, nil
}

func (s *Server) FundsOf(
	ctx context.Context,
	req *pb.FundsOfRequest,
) (*pb.FundsOfResponse, error) {
	return &pb.FundsOfResponse{
		Amount: s.svc.FundsOf(market.Account(req.Account)),
	}, nil
}

// -------------------- Error mapping --------------------

func toStatus(err error) error {
	switch {
	case errors.Is(err, market.ErrNonexistentItem):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, market.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, market.ErrZeroAddress),
		errors.Is(err, market.ErrBadFeeRate),
		errors.Is(err, market.ErrBadAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, market.ErrExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, market.ErrBidTooLow),
		errors.Is(err, market.ErrBidLocked),
		errors.Is(err, market.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, market.ErrReentrant):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
