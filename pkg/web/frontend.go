package web

import "net/http"

func (s *Server) serveFrontend(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(frontendHTML))
}

const frontendHTML = `<!DOCTYPE html>
<html lang="en"><head>
<meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1">
<title>James Worth | Full Stack Developer</title>
<link href="https://fonts.googleapis.com/css2?family=JetBrains+Mono:wght@300;400;500;600;700&family=Space+Grotesk:wght@400;500;600;700&display=swap" rel="stylesheet">
<style>
:root{--bg:#08090d;--sf:#0f1118;--sf2:#161923;--sf3:#1e2230;--bd:#252a3a;--bd2:#333a50;--tx:#c8cdd8;--tx2:#8891a5;--tx3:#5a6278;--ac:#3b82f6;--gn:#10b981;--rd:#ef4444;--or:#f59e0b;--pr:#a855f7;--cy:#06b6d4}
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:'Space Grotesk',sans-serif;background:var(--bg);color:var(--tx);min-height:100vh}
a{color:var(--ac);text-decoration:none}a:hover{text-decoration:underline}
.app{max-width:1100px;margin:0 auto;padding:20px 24px}
.hdr{display:flex;justify-content:space-between;align-items:center;padding:16px 0;border-bottom:1px solid var(--bd);margin-bottom:32px}
.hdr h1{font-size:20px;font-weight:700;background:linear-gradient(135deg,var(--ac),var(--pr));-webkit-background-clip:text;-webkit-text-fill-color:transparent;cursor:pointer}
.nav{display:flex;gap:4px;background:var(--sf);border-radius:10px;padding:4px;border:1px solid var(--bd)}
.nav button{font-family:'JetBrains Mono',monospace;font-size:11px;padding:8px 16px;border:none;background:0;color:var(--tx2);cursor:pointer;border-radius:8px;transition:.2s}
.nav button:hover{color:var(--tx);background:var(--sf2)}
.nav button.on{background:var(--ac);color:#fff}
.hero{padding:48px 0}.hero .hi{color:var(--ac);font-weight:500;margin-bottom:12px}
.hero h2{font-size:56px;font-weight:700;color:#fff;margin-bottom:16px}
.hero .role{font-size:22px;color:var(--tx2);margin-bottom:12px}.hero p{color:var(--tx2);max-width:640px;line-height:1.6}
.sec{font-size:28px;font-weight:700;color:#fff;margin:32px 0 18px}
.pn{background:var(--sf);border:1px solid var(--bd);border-radius:12px;margin-bottom:18px;overflow:hidden}
.pn-h{display:flex;justify-content:space-between;align-items:center;padding:13px 18px;border-bottom:1px solid var(--bd);background:var(--sf2)}
.pn-h h2{font-size:14px;font-weight:600}
.pn-b{padding:18px}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(300px,1fr));gap:18px}
.card{background:var(--sf);border:1px solid var(--bd);border-radius:12px;padding:18px;cursor:pointer;transition:.2s}
.card:hover{border-color:var(--ac);transform:translateY(-2px)}
.card h3{font-size:17px;color:#fff;margin-bottom:8px}.card p{font-size:13px;color:var(--tx2);line-height:1.5}
.tags{display:flex;flex-wrap:wrap;gap:6px;margin-top:12px}
.tag{font-family:'JetBrains Mono',monospace;font-size:10px;padding:3px 8px;border-radius:5px;background:var(--sf3);color:var(--tx2);border:1px solid var(--bd)}
.live{font-family:'JetBrains Mono',monospace;font-size:9px;padding:3px 10px;border-radius:20px;background:rgba(16,185,129,.1);color:var(--gn);border:1px solid rgba(16,185,129,.2);letter-spacing:1.5px;font-weight:600}
.live::before{content:'';display:inline-block;width:6px;height:6px;border-radius:50%;background:var(--gn);margin-right:6px;animation:blink 2s infinite}
@keyframes blink{0%,100%{opacity:1}50%{opacity:.3}}
.emp{text-align:center;padding:32px;color:var(--tx3);font-size:13px}.emp.err{color:var(--rd)}
.spin{width:28px;height:28px;border:2px solid var(--ac);border-top-color:transparent;border-radius:50%;margin:0 auto 12px;animation:spin 1s linear infinite}
@keyframes spin{to{transform:rotate(360deg)}}
.tk{background:var(--sf2);border-radius:10px;margin-bottom:10px;overflow:hidden}
.tk-r{width:100%;display:flex;align-items:center;gap:16px;padding:14px 16px;background:0;border:none;color:var(--tx);cursor:pointer;text-align:left;font-family:inherit}
.tk-r:hover{background:var(--sf3)}
.ind{width:36px;height:36px;border-radius:50%;display:flex;align-items:center;justify-content:center;flex-shrink:0;font-weight:700}
.ind.ok{background:rgba(16,185,129,.15);color:var(--gn)}.ind.no{background:rgba(239,68,68,.15);color:var(--rd)}
.nm{flex:1;min-width:0}.nm b{color:#fff}.nm .sy{color:var(--tx3);font-size:13px;margin-left:6px}
.nm .ad,.mt .l{font-family:'JetBrains Mono',monospace;font-size:11px;color:var(--tx3)}
.mt{text-align:center;font-size:13px}.mt .v{color:#fff;font-weight:500}
.age{font-size:12px;color:var(--tx3);flex-shrink:0;min-width:70px;text-align:right}
.arr{transition:.2s;color:var(--tx3)}.arr.up{transform:rotate(180deg)}
.tk-d{padding:12px 16px 16px;border-top:1px solid var(--bd)}
.mg{display:grid;grid-template-columns:repeat(auto-fit,minmax(140px,1fr));gap:10px;margin-bottom:12px}
.mc{background:var(--sf);border-radius:8px;padding:10px}.mc .l{font-size:10px;color:var(--tx3);text-transform:uppercase;letter-spacing:.6px}.mc .v{font-family:'JetBrains Mono',monospace;color:#fff;margin-top:4px}
.fl{color:var(--rd);font-size:13px;font-weight:600;margin:8px 0 6px}.fl li{color:var(--tx2);font-weight:400;margin-left:18px}
.lk{display:flex;gap:14px;margin-top:12px;font-size:13px}
.fg{margin-bottom:14px}
.fg label{display:block;font-size:11px;color:var(--tx2);text-transform:uppercase;letter-spacing:.8px;margin-bottom:6px}
.fg input,.fg textarea{width:100%;padding:10px 12px;background:var(--sf2);border:1px solid var(--bd);border-radius:8px;color:var(--tx);font-family:inherit;font-size:13px;outline:0}
.fg input:focus,.fg textarea:focus{border-color:var(--ac)}
.btn{font-family:'JetBrains Mono',monospace;font-size:11px;padding:10px 18px;border:none;border-radius:8px;cursor:pointer;font-weight:600;transition:.2s}
.btn-p{background:var(--ac);color:#fff}.btn-p:hover{background:#2563eb}.btn-p:disabled{opacity:.5}
.btn-s{background:var(--sf2);color:var(--tx2);border:1px solid var(--bd)}.btn-s:hover{color:var(--tx)}
.ok-msg{color:var(--gn);margin-top:12px;font-size:13px}.err-msg{color:var(--rd);margin-top:12px;font-size:13px}
</style></head><body>
<div id="root"></div>
<script src="https://cdnjs.cloudflare.com/ajax/libs/react/18.2.0/umd/react.production.min.js"></script>
<script src="https://cdnjs.cloudflare.com/ajax/libs/react-dom/18.2.0/umd/react-dom.production.min.js"></script>
<script src="https://cdnjs.cloudflare.com/ajax/libs/babel-standalone/7.23.9/babel.min.js"></script>
<script type="text/babel">
const{useState,useEffect,useCallback}=React;
const useFetch=(u,ms=0)=>{const[d,sD]=useState(null);const ld=useCallback(()=>{fetch(u).then(r=>r.json()).then(sD).catch(()=>{})},[u]);useEffect(()=>{ld();if(!ms)return;const i=setInterval(ld,ms);return()=>clearInterval(i)},[ld,ms]);return{d,r:ld}};

function App(){
  const[page,sPage]=useState('home'),[pid,sPid]=useState(null);
  const go=(p,id)=>{sPage(p);sPid(id||null);window.scrollTo(0,0)};
  return<div className="app">
    <div className="hdr">
      <h1 onClick={()=>go('home')}>James Worth</h1>
      <div className="nav">
        {[['home','Home'],['projects','Projects'],['about','About'],['contact','Contact']].map(([k,l])=>
          <button key={k} className={page===k||(k==='projects'&&page==='detail')?'on':''} onClick={()=>go(k)}>{l}</button>)}
      </div>
    </div>
    {page==='home'&&<Home go={go}/>}
    {page==='projects'&&<Projects go={go}/>}
    {page==='detail'&&<ProjectDetail id={pid} go={go}/>}
    {page==='about'&&<About/>}
    {page==='contact'&&<Contact/>}
  </div>
}

function Home({go}){
  const{d:me}=useFetch('/api/profile');
  const{d:featured}=useFetch('/api/projects/featured');
  if(!me)return null;
  return<>
    <div className="hero">
      <div className="hi">Hi, my name is</div>
      <h2>{me.name}</h2>
      <div className="role">{me.role}</div>
      <p>{me.tagline}</p>
      <div style={{display:'flex',gap:10,marginTop:24}}>
        <button className="btn btn-p" onClick={()=>go('projects')}>View My Work</button>
        <button className="btn btn-s" onClick={()=>go('contact')}>Get In Touch</button>
      </div>
    </div>
    <div className="sec">Featured Projects</div>
    <div className="grid">{(featured||[]).map(p=><Card key={p.id} p={p} go={go}/>)}</div>
  </>
}

function Card({p,go}){
  return<div className="card" onClick={()=>go('detail',p.id)}>
    <div style={{display:'flex',justifyContent:'space-between',alignItems:'center',marginBottom:8}}>
      <span className="tag">{p.category}</span>{p.liveDashboard&&<span className="live">LIVE</span>}
    </div>
    <h3>{p.title}</h3><p>{p.description}</p>
    <div className="tags">{p.technologies.map(t=><span key={t} className="tag">{t}</span>)}</div>
  </div>
}

function Projects({go}){
  const[c,sC]=useState('');
  const{d:list}=useFetch('/api/projects'+(c?'?category='+c:''));
  return<>
    <div className="sec">Projects</div>
    <div className="nav" style={{marginBottom:20,display:'inline-flex'}}>
      {['','blockchain','mobile','ai','web'].map(k=><button key={k} className={c===k?'on':''} onClick={()=>sC(k)}>{k?k.toUpperCase():'ALL'}</button>)}
    </div>
    <div className="grid">{(list||[]).map(p=><Card key={p.id} p={p} go={go}/>)}</div>
    {list&&!list.length&&<div className="emp">No projects in this category yet.</div>}
  </>
}

function ProjectDetail({id,go}){
  const{d:p}=useFetch('/api/projects/'+id);
  if(!p)return<div className="emp"><div className="spin"/></div>;
  return<>
    <button className="btn btn-s" onClick={()=>go('projects')}>&larr; Back to Projects</button>
    <div className="sec">{p.title}</div>
    <p style={{color:'var(--tx2)',lineHeight:1.7,marginBottom:18}}>{p.longDescription||p.description}</p>
    <div className="tags" style={{marginBottom:18}}>{p.technologies.map(t=><span key={t} className="tag">{t}</span>)}</div>
    <div className="lk" style={{marginBottom:24}}>
      {p.githubUrl&&<a href={p.githubUrl} target="_blank" rel="noopener noreferrer">View Code</a>}
      {p.liveUrl&&<a href={p.liveUrl} target="_blank" rel="noopener noreferrer">Live Demo</a>}
    </div>
    {p.liveDashboard&&<div className="pn">
      <div className="pn-h"><h2>Live Token Checks</h2><span className="live">LIVE</span></div>
      <div className="pn-b"><TokenDashboard/></div>
    </div>}
  </>
}

function TokenDashboard(){
  const{d:panel,r:reload}=useFetch('/api/tokens',30000);
  const[open,sOpen]=useState(null);
  const refresh=()=>{fetch('/api/tokens/refresh',{method:'POST'}).then(()=>setTimeout(reload,1500)).catch(()=>{})};
  if(!panel||panel.phase==='loading')return<div className="emp"><div className="spin"/>Loading live data...</div>;
  if(panel.phase==='error')return<div className="emp err">{panel.error}</div>;
  if(panel.phase==='empty')return<div className="emp">Waiting for new tokens...</div>;
  return<div>
    <div style={{display:'flex',justifyContent:'flex-end',marginBottom:10}}><button className="btn btn-s" onClick={refresh}>Refresh</button></div>
    {panel.rows.map(row=>{const t=row.record,on=open===row.key;return<div key={row.key} className="tk">
      <button className="tk-r" onClick={()=>sOpen(on?null:row.key)}>
        <div className={'ind '+(t.passed?'ok':'no')}>{t.passed?'✓':'✕'}</div>
        <div className="nm"><div><b>{t.name}</b><span className="sy">${t.symbol}</span></div><div className="ad">{row.shortToken}</div></div>
        <div className="mt"><div className="l">Liquidity</div><div className="v">{row.liquidity}</div></div>
        <div className="mt"><div className="l">Tax</div><div className="v">{row.taxes}</div></div>
        <div className="age">{row.age}</div>
        <span className={'arr'+(on?' up':'')}>&#9662;</span>
      </button>
      {on&&<div className="tk-d">
        <div className="mg">{row.details.map(m=><div key={m.label} className="mc"><div className="l">{m.label}</div><div className="v">{m.value}</div></div>)}</div>
        {row.failures.length>0&&<div className="fl">Failed Checks:<ul>{row.failures.map((f,i)=><li key={i}>{f}</li>)}</ul></div>}
        <div className="lk">
          <a href={row.explorerUrl} target="_blank" rel="noopener noreferrer">View on Etherscan</a>
          <a href={row.chartUrl} target="_blank" rel="noopener noreferrer">DexScreener</a>
        </div>
      </div>}
    </div>})}
  </div>
}

function About(){
  const{d:me}=useFetch('/api/profile');
  if(!me)return null;
  return<>
    <div className="sec">About Me</div>
    <div className="pn"><div className="pn-b" style={{lineHeight:1.7,color:'var(--tx2)'}}>
      <p style={{marginBottom:12}}>{me.summary}</p>{me.bio.map((b,i)=><p key={i} style={{marginBottom:12}}>{b}</p>)}
    </div></div>
    <div className="sec">Skills &amp; Technologies</div>
    <div className="grid">{me.skills.map(g=><div key={g.category} className="card" style={{cursor:'default'}}><h3>{g.category}</h3><div className="tags">{g.items.map(s=><span key={s} className="tag">{s}</span>)}</div></div>)}</div>
    <div className="sec">AI-Assisted Workflow</div>
    <div className="grid">{me.workflow.map(s=><div key={s.title} className="card" style={{cursor:'default'}}><h3>{s.title}</h3><p>{s.description}</p></div>)}</div>
  </>
}

function Contact(){
  const[f,sF]=useState({name:'',email:'',message:''}),[status,sStatus]=useState('idle'),[msg,sMsg]=useState('');
  const submit=async e=>{
    e.preventDefault();sStatus('submitting');
    try{
      const res=await fetch('/api/contact',{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify(f)});
      const data=await res.json();
      sStatus(data.status);sMsg(data.message);
      if(data.status==='success')sF({name:'',email:'',message:''});
    }catch(err){sStatus('error');sMsg('Error: '+err.message)}
  };
  return<>
    <div className="sec">Get In Touch</div>
    <div className="pn"><div className="pn-b">
      <form onSubmit={submit}>
        <div className="fg"><label htmlFor="name">Name</label><input id="name" required value={f.name} onChange={e=>sF({...f,name:e.target.value})} placeholder="James Worth"/></div>
        <div className="fg"><label htmlFor="email">Email</label><input id="email" type="email" required value={f.email} onChange={e=>sF({...f,email:e.target.value})} placeholder="your@email.com"/></div>
        <div className="fg"><label htmlFor="message">Message</label><textarea id="message" required rows={5} value={f.message} onChange={e=>sF({...f,message:e.target.value})} placeholder="Your message..."/></div>
        <button type="submit" className="btn btn-p" disabled={status==='submitting'}>{status==='submitting'?'Sending...':'Send Message'}</button>
        {status==='success'&&<div className="ok-msg">{msg}</div>}
        {status==='error'&&<div className="err-msg">{msg}</div>}
      </form>
    </div></div>
  </>
}

ReactDOM.render(<App/>,document.getElementById('root'));
</script></body></html>` + "\n"
