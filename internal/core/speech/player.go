package speech

import (
	"bytes"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Player 透過 oto 播放合成音訊
// oto 的音訊裝置 context 一個行程只能建一次，取樣率由第一個片段決定
type Player struct {
	ctx *oto.Context
}

// NewPlayer 依片段的取樣參數初始化音訊裝置
func NewPlayer(clip *Clip) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   clip.SampleRate,
		ChannelCount: clip.Channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	return &Player{ctx: ctx}, nil
}

// Play 開始播放並立即回傳控制把手
func (p *Player) Play(clip *Clip) *Playback {
	player := p.ctx.NewPlayer(bytes.NewReader(clip.PCM))
	player.Play()

	pb := &Playback{
		player: player,
		done:   make(chan struct{}),
	}
	go pb.watch()
	return pb
}

// Playback 單次播放的控制把手
type Playback struct {
	player *oto.Player
	done   chan struct{}
}

// watch 播放結束或被中斷時關閉 done
func (pb *Playback) watch() {
	for pb.player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	pb.player.Close()
	close(pb.done)
}

// Stop 中斷播放，重複呼叫與播放結束後呼叫都安全
func (pb *Playback) Stop() {
	pb.player.Pause()
}

// Done 播放結束（自然結束或被中斷）時關閉
func (pb *Playback) Done() <-chan struct{} {
	return pb.done
}
